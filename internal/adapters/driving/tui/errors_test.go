package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, ErrMissingSessionService.Error(), "session service")
	assert.Contains(t, ErrMissingIngestService.Error(), "ingest service")
	assert.Contains(t, ErrMissingReviewService.Error(), "review service")
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
