package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "prism.dev/pkg/prism/internal/model"
)

func TestClassify_DirectCopy(t *testing.T) {
	assert.Equal(t, m.VerdictDirectCopy, Classify(80.01, 80.01, 0))
}

func TestClassify_DirectCopyWinsOverAIScore(t *testing.T) {
	// Both rules match; the copy rule is checked first.
	assert.Equal(t, m.VerdictDirectCopy, Classify(95, 95, 1.0))
}

func TestClassify_AIAssisted(t *testing.T) {
	assert.Equal(t, m.VerdictAIAssisted, Classify(20, 85, 0.7))
	assert.Equal(t, m.VerdictAIAssisted, Classify(90, 20, 0.8))
}

func TestClassify_LikelyOriginal(t *testing.T) {
	assert.Equal(t, m.VerdictLikelyOriginal, Classify(34.99, 34.99, 0.69))
	assert.Equal(t, m.VerdictLikelyOriginal, Classify(0, 0, 0))
}

func TestClassify_ModerateSimilarity(t *testing.T) {
	// High lexical alone is not a copy, and nothing else matches.
	assert.Equal(t, m.VerdictModerate, Classify(90, 20, 0.3))
	assert.Equal(t, m.VerdictModerate, Classify(50, 50, 0.5))

	// Exact thresholds fall through to moderate.
	assert.Equal(t, m.VerdictModerate, Classify(80, 80, 0))
	assert.Equal(t, m.VerdictModerate, Classify(35, 35, 0))
}
