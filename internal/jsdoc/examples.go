// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

// Package jsdoc extracts tagged request examples from JSDoc comment blocks.
package jsdoc

import (
	"regexp"
	"strings"

	"github.com/routelens/routelens/internal/routes"
	"github.com/routelens/routelens/pkg/types"
)

const (
	blockOpen  = "/**"
	blockClose = "*/"
	exampleTag = "@example"
)

// decorationRegex matches the per-line leading decoration of a JSDoc block:
// leading whitespace, an optional single * marker, and one optional space.
var decorationRegex = regexp.MustCompile(`^[ \t]*\*? ?`)

// methodLineRegex matches an uppercase HTTP method keyword at the start of a
// logical line, followed by whitespace, an opening brace, or line end.
var methodLineRegex = regexp.MustCompile(`^(GET|POST|PUT|DELETE|PATCH|OPTIONS|HEAD)([ \t{]|$)`)

// Extract scans the source text for JSDoc blocks containing @example
// sections with an HTTP method and a brace-balanced JSON payload. Each
// example is paired with the first route call after its block whose method
// matches; unmatched or incomplete examples are dropped silently.
func Extract(text string) []types.JSDocExample {
	var examples []types.JSDocExample

	for blockStart := 0; ; {
		open := strings.Index(text[blockStart:], blockOpen)
		if open < 0 {
			break
		}
		open += blockStart

		closer := strings.Index(text[open+len(blockOpen):], blockClose)
		if closer < 0 {
			break
		}
		innerStart := open + len(blockOpen)
		innerEnd := innerStart + closer
		blockEnd := innerEnd + len(blockClose)

		blockExamples := extractFromBlock(text, innerStart, innerEnd)
		if len(blockExamples) > 0 {
			// Association rule: the first recognized route call anywhere
			// after the block, regardless of distance.
			if route, ok := routes.FirstCallAfter(text, blockEnd); ok {
				for _, ex := range blockExamples {
					if strings.ToLower(ex.Method) != route.Method {
						continue
					}
					ex.RoutePath = route.Path
					ex.RouteMethod = route.Method
					examples = append(examples, ex)
				}
			}
		}

		blockStart = blockEnd
	}

	return examples
}

// pendingExample accumulates a brace-balanced payload across logical lines.
type pendingExample struct {
	method     string
	startIndex int
	body       strings.Builder
	balance    int
	open       bool
}

// extractFromBlock collects the examples declared inside one JSDoc block
// interior (the span between the /** opener and the */ closer). Route
// association is left to the caller.
func extractFromBlock(text string, blockStart, blockEnd int) []types.JSDocExample {
	var collected []types.JSDocExample

	inExample := false
	var pending pendingExample

	flush := func() {
		if pending.open && pending.balance == 0 {
			collected = append(collected, types.JSDocExample{
				Method:           pending.method,
				JSONBody:         strings.TrimSpace(pending.body.String()),
				MethodStartIndex: pending.startIndex,
			})
		}
		pending = pendingExample{}
	}

	block := text[blockStart:blockEnd]
	lineStart := 0
	for lineStart < len(block) {
		lineEnd := strings.IndexByte(block[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(block)
		} else {
			lineEnd += lineStart
		}

		line := block[lineStart:lineEnd]
		prefixLen := len(decorationRegex.FindString(line))
		logical := line[prefixLen:]
		trimmed := strings.TrimSpace(logical)

		switch {
		case strings.HasPrefix(trimmed, exampleTag):
			// A tag line terminates any payload still being captured.
			pending = pendingExample{}
			inExample = true

		case strings.HasPrefix(trimmed, "@"):
			pending = pendingExample{}
			inExample = false

		case pending.open && pending.balance > 0:
			pending.body.WriteString("\n")
			pending.body.WriteString(logical)
			pending.balance += braceDelta(logical)
			if pending.balance <= 0 {
				flush()
			}

		case inExample:
			m := methodLineRegex.FindStringSubmatch(logical)
			if m == nil {
				break
			}
			pending = pendingExample{
				method: m[1],
				// The example line's offset in the whole text plus the
				// keyword's offset within the decorated line.
				startIndex: blockStart + lineStart + prefixLen,
				open:       true,
			}
			if brace := strings.IndexByte(logical, '{'); brace >= 0 {
				payload := logical[brace:]
				pending.body.WriteString(payload)
				pending.balance = braceDelta(payload)
				if pending.balance <= 0 {
					flush()
				}
			} else {
				// Method-only example with no payload on the line.
				flush()
			}
		}

		lineStart = lineEnd + 1
	}

	// A payload still open at the block terminator is incomplete.
	return collected
}

// braceDelta returns the open-minus-close brace count of a line.
func braceDelta(s string) int {
	return strings.Count(s, "{") - strings.Count(s, "}")
}
