// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package parser

import (
	"github.com/routelens/routelens/pkg/types"
)

// scanState is the lexer state for comment range scanning.
type scanState int

const (
	stateBareCode scanState = iota
	stateInString
	stateInLineComment
	stateInBlockComment
)

// ScanCommentRanges identifies all line and block comment ranges in the
// source text in a single pass. String literals (single-quote, double-quote,
// or backtick delimited) are tracked so that comment markers inside them are
// ignored, but do not themselves produce ranges. Template interpolation
// inside backtick strings is treated as ordinary string content.
//
// An unterminated comment at end of text emits a final range closed at the
// text end. The returned ranges are non-overlapping and ordered by start.
func ScanCommentRanges(text string) []types.CommentRange {
	var ranges []types.CommentRange

	state := stateBareCode
	var quote byte
	rangeStart := 0

	for i := 0; i < len(text); i++ {
		c := text[i]

		switch state {
		case stateBareCode:
			switch {
			case c == '\'' || c == '"' || c == '`':
				state = stateInString
				quote = c
			case c == '/' && i+1 < len(text) && text[i+1] == '/':
				state = stateInLineComment
				rangeStart = i
				i++
			case c == '/' && i+1 < len(text) && text[i+1] == '*':
				state = stateInBlockComment
				rangeStart = i
				i++
			}

		case stateInString:
			switch {
			case c == '\\':
				// Escape: skip the next character, including a matching quote.
				i++
			case c == quote:
				state = stateBareCode
			}

		case stateInLineComment:
			if c == '\n' {
				ranges = append(ranges, types.CommentRange{Start: rangeStart, End: i})
				state = stateBareCode
			}

		case stateInBlockComment:
			if c == '*' && i+1 < len(text) && text[i+1] == '/' {
				ranges = append(ranges, types.CommentRange{Start: rangeStart, End: i + 2})
				state = stateBareCode
				i++
			}
		}
	}

	// Unterminated comment at end of text.
	if state == stateInLineComment || state == stateInBlockComment {
		ranges = append(ranges, types.CommentRange{Start: rangeStart, End: len(text)})
	}

	return ranges
}

// InCommentRange reports whether the byte offset lies inside any of the ranges.
func InCommentRange(ranges []types.CommentRange, offset int) bool {
	for _, r := range ranges {
		if r.Contains(offset) {
			return true
		}
	}
	return false
}
