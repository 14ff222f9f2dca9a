/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// selectBestConfiguration applies the quality criteria as a sequence of
// minimizing filters: each criterion keeps only the candidates that score
// best on it, then passes the survivors to the next criterion. Ties after
// the last criterion break on generation order, so exhaustive brackets
// resolve to the lowest Article 4.2 sequence.
func selectBestConfiguration(configs []*candidate) *candidate {
	viable := configs[:0:0]
	for _, c := range configs {
		if len(c.pairings) > 0 {
			viable = append(viable, c)
		}
	}
	if len(viable) == 0 {
		return nil
	}

	viable = filterMinInt(viable, func(c *candidate) int { return c.metrics.downfloaters })
	viable = filterMinList(viable, func(c *candidate) []float64 { return c.metrics.downfloaterScores })
	viable = filterMinInt(viable, func(c *candidate) int { return c.metrics.futureIncompatible })
	viable = filterMinInt(viable, func(c *candidate) int { return c.metrics.byeUnplayed })
	viable = filterMinInt(viable, func(c *candidate) int { return c.metrics.topscorerColorDiff })
	viable = filterMinInt(viable, func(c *candidate) int { return c.metrics.topscorerConsecutive })
	viable = filterMinInt(viable, func(c *candidate) int { return c.metrics.colorPrefViolations })
	viable = filterMinInt(viable, func(c *candidate) int { return c.metrics.strongPrefViolations })
	viable = filterMinInt(viable, func(c *candidate) int { return c.metrics.repeatDownfloaters })
	viable = filterMinInt(viable, func(c *candidate) int { return c.metrics.repeatUpfloaters })
	viable = filterMinInt(viable, func(c *candidate) int { return c.metrics.twoBackDownfloaters })
	viable = filterMinInt(viable, func(c *candidate) int { return c.metrics.twoBackUpfloaters })
	viable = filterMinList(viable, func(c *candidate) []float64 { return c.metrics.repeatDownDiffs })
	viable = filterMinList(viable, func(c *candidate) []float64 { return c.metrics.repeatUpDiffs })
	viable = filterMinList(viable, func(c *candidate) []float64 { return c.metrics.twoBackDownDiffs })
	viable = filterMinList(viable, func(c *candidate) []float64 { return c.metrics.twoBackUpDiffs })

	best := viable[0]
	for _, c := range viable[1:] {
		if c.seq < best.seq {
			best = c
		}
	}
	return best
}

func filterMinInt(configs []*candidate, metric func(*candidate) int) []*candidate {
	if len(configs) <= 1 {
		return configs
	}
	min := metric(configs[0])
	for _, c := range configs[1:] {
		if v := metric(c); v < min {
			min = v
		}
	}
	out := configs[:0]
	for _, c := range configs {
		if metric(c) == min {
			out = append(out, c)
		}
	}
	return out
}

// filterMinList keeps the candidates whose metric list is lexicographically
// smallest, with a shorter list beating any longer prefix-equal list.
func filterMinList(configs []*candidate, metric func(*candidate) []float64) []*candidate {
	if len(configs) <= 1 {
		return configs
	}
	min := metric(configs[0])
	for _, c := range configs[1:] {
		if compareFloatLex(metric(c), min) < 0 {
			min = metric(c)
		}
	}
	out := configs[:0]
	for _, c := range configs {
		if compareFloatLex(metric(c), min) == 0 {
			out = append(out, c)
		}
	}
	return out
}

func compareFloatLex(a, b []float64) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
