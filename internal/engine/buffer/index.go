package buffer

// resolveIndex normalizes a possibly-negative line index against the
// given line count. Negative indices are relative to one past the last
// line: -1 resolves to lineCount (one past the end), -2 to the last
// line, and so on. Resolution itself never fails; bounds are checked
// afterwards by checkIndex or clampIndex depending on strictness.
//
// This is the single normalization rule shared by every range entry
// point so that read and write paths cannot drift apart.
func resolveIndex(idx, lineCount int) int {
	if idx < 0 {
		idx = lineCount + idx + 1
	}
	return idx
}

// checkIndex validates a resolved index under strict indexing.
// Valid indices span [0, lineCount]: lineCount itself is a legal
// exclusive end.
func checkIndex(idx, lineCount int) error {
	if idx < 0 || idx > lineCount {
		return ErrIndexOutOfBounds
	}
	return nil
}

// clampIndex silently clips a resolved index into [0, lineCount].
func clampIndex(idx, lineCount int) int {
	if idx < 0 {
		return 0
	}
	if idx > lineCount {
		return lineCount
	}
	return idx
}

// resolveRange resolves and bounds-checks a [start, end) line range.
// With strict indexing an out-of-bounds index is an error; otherwise
// both ends are clamped. A resolved start greater than end is only an
// error for callers that require a well-formed splice range; readers
// treat it as empty.
func resolveRange(start, end, lineCount int, strict bool) (int, int, error) {
	start = resolveIndex(start, lineCount)
	end = resolveIndex(end, lineCount)

	if strict {
		if err := checkIndex(start, lineCount); err != nil {
			return 0, 0, err
		}
		if err := checkIndex(end, lineCount); err != nil {
			return 0, 0, err
		}
	} else {
		start = clampIndex(start, lineCount)
		end = clampIndex(end, lineCount)
	}

	return start, end, nil
}
