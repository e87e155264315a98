package wordfreq

import "strings"

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// ForEachToken lowercases line and calls fn for every maximal run of [a-z] characters, in order.
// Any other character is a separator, empty tokens are never produced.
func ForEachToken(line string, fn func(token string)) {
	lower := strings.ToLower(line)

	begin := -1
	for i := 0; i < len(lower); i++ {
		if isWordByte(lower[i]) {
			if begin < 0 {
				begin = i
			}
			continue
		}
		if begin >= 0 {
			fn(lower[begin:i])
			begin = -1
		}
	}

	if begin >= 0 {
		fn(lower[begin:])
	}
}

// Tokenize collects the tokens of ForEachToken
func Tokenize(line string) []string {
	var result []string
	ForEachToken(line, func(token string) {
		result = append(result, token)
	})
	return result
}

// InsertLine inserts every token of line into the table
func (t *Table) InsertLine(line string) {
	ForEachToken(line, t.InsertOrIncrement)
}
