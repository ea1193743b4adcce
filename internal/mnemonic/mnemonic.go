// Package mnemonic bridges BIP-39 recovery phrases to the hex-secret
// contract gfshare.Share and gfshare.Combine expect: generation,
// validation, normalization, and typo detection/suggestion for the
// phrase itself, plus ToHex/FromHex conversion so a caller splitting a
// wallet recovery phrase never hand-rolls the entropy<->hex step.
package mnemonic

import (
	"encoding/hex"
	"errors"
	"math"
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/tyler-smith/go-bip39"
)

var (
	// ErrInvalidWordCount indicates the mnemonic must be 12 or 24 words.
	ErrInvalidWordCount = errors.New("word count must be 12 or 24")

	// ErrInvalidMnemonic indicates the mnemonic is not valid.
	ErrInvalidMnemonic = errors.New("invalid mnemonic phrase")

	whitespaceRegex    = regexp.MustCompile(`\s+`)
	numberedListRegex  = regexp.MustCompile(`(?:^|\s)\d+[\.\)\:]\s*`)
	bulletListRegex    = regexp.MustCompile(`(?:^|\s)[-*•]\s*`)
)

// Generate creates a new BIP-39 mnemonic phrase. wordCount must be 12
// (128 bits entropy) or 24 (256 bits entropy).
func Generate(wordCount int) (string, error) {
	var bitSize int
	switch wordCount {
	case 12:
		bitSize = 128
	case 24:
		bitSize = 256
	default:
		return "", ErrInvalidWordCount
	}

	entropy, err := bip39.NewEntropy(bitSize)
	if err != nil {
		return "", err
	}

	return bip39.NewMnemonic(entropy)
}

// Validate checks a mnemonic phrase's word count, word validity, and
// checksum per BIP-39.
func Validate(phrase string) error {
	if phrase == "" {
		return ErrInvalidMnemonic
	}

	normalized := Normalize(phrase)

	words := strings.Fields(normalized)
	if len(words) != 12 && len(words) != 24 {
		return ErrInvalidMnemonic
	}

	if !bip39.IsMnemonicValid(normalized) {
		return ErrInvalidMnemonic
	}
	return nil
}

// Normalize lowercases, strips numbered/bullet list prefixes, replaces
// commas with spaces, and collapses whitespace in a pasted mnemonic.
func Normalize(input string) string {
	input = strings.ToLower(input)
	input = numberedListRegex.ReplaceAllString(input, " ")
	input = bulletListRegex.ReplaceAllString(input, " ")
	input = strings.ReplaceAll(input, ",", " ")
	input = whitespaceRegex.ReplaceAllString(input, " ")
	return strings.TrimSpace(input)
}

// ToHex validates phrase and returns its underlying BIP-39 entropy as a
// lowercase hex string -- the contract gfshare.Share expects for its
// secretHex argument. This is entropy, not the 64-byte BIP-39 seed:
// splitting entropy lets a quorum of shares recover the exact original
// phrase (including its checksum word), whereas splitting the seed would
// only recover derived keys.
func ToHex(phrase string) (string, error) {
	normalized := Normalize(phrase)
	if err := Validate(normalized); err != nil {
		return "", err
	}

	entropy, err := bip39.EntropyFromMnemonic(normalized)
	if err != nil {
		return "", ErrInvalidMnemonic
	}
	return hex.EncodeToString(entropy), nil
}

// FromHex is the inverse of ToHex: given the hex entropy recovered by
// gfshare.Combine, rebuilds the original mnemonic phrase.
func FromHex(entropyHex string) (string, error) {
	entropy, err := hex.DecodeString(entropyHex)
	if err != nil {
		return "", ErrInvalidMnemonic
	}
	return bip39.NewMnemonic(entropy)
}

// Seed converts a mnemonic phrase plus optional passphrase to the
// 64-byte BIP-39 seed used for key derivation (internal/walletshare).
func Seed(phrase, passphrase string) ([]byte, error) {
	normalized := Normalize(phrase)
	if err := Validate(normalized); err != nil {
		return nil, err
	}
	return bip39.NewSeed(normalized, passphrase), nil
}

// IsValidWord reports whether word is in the BIP-39 English word list.
func IsValidWord(word string) bool {
	_, ok := bip39.GetWordIndex(strings.ToLower(word))
	return ok
}

// MaxTypoDistance is the maximum Levenshtein distance to consider a
// suggestion close enough to offer.
const MaxTypoDistance = 2

// TypoInfo describes a detected typo and its suggested correction.
type TypoInfo struct {
	Index      int // 0-based word position in the mnemonic
	Word       string
	Suggestion string
	Distance   int
}

// SuggestWord returns the closest BIP-39 word to input, or "" if none is
// within MaxTypoDistance.
func SuggestWord(input string) string {
	input = strings.ToLower(input)
	wordList := bip39.GetWordList()

	minDist := math.MaxInt
	var suggestion string

	for _, word := range wordList {
		dist := levenshtein.ComputeDistance(input, word)
		if dist < minDist {
			minDist = dist
			suggestion = word
		}
		if dist == 0 {
			return word
		}
	}

	if minDist <= MaxTypoDistance {
		return suggestion
	}
	return ""
}

// DetectTypos scans a mnemonic phrase for words outside the BIP-39 word
// list and suggests corrections.
func DetectTypos(phrase string) []TypoInfo {
	if phrase == "" {
		return nil
	}

	words := strings.Fields(Normalize(phrase))
	var typos []TypoInfo

	for i, word := range words {
		if IsValidWord(word) {
			continue
		}
		suggestion := SuggestWord(word)
		distance := 0
		if suggestion != "" {
			distance = levenshtein.ComputeDistance(word, suggestion)
		}
		typos = append(typos, TypoInfo{
			Index:      i,
			Word:       word,
			Suggestion: suggestion,
			Distance:   distance,
		})
	}

	return typos
}

// FormatTypoSuggestions renders DetectTypos output as human-readable text.
func FormatTypoSuggestions(typos []TypoInfo) string {
	if len(typos) == 0 {
		return ""
	}

	var b strings.Builder
	for i, typo := range typos {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("word ")
		b.WriteString(itoa(typo.Index + 1))
		b.WriteString(": '")
		b.WriteString(typo.Word)
		b.WriteByte('\'')
		if typo.Suggestion != "" {
			b.WriteString(" - did you mean '")
			b.WriteString(typo.Suggestion)
			b.WriteString("'?")
		} else {
			b.WriteString(" is not a valid BIP-39 word")
		}
	}
	return b.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + itoa(-n)
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
