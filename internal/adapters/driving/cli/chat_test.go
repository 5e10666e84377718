package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetChatFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { chatFileID = "" })
}

func TestChatCmd_Use(t *testing.T) {
	assert.Equal(t, "chat [file] [question]", chatCmd.Use)
}

func TestChatCmd_UploadAndAsk(t *testing.T) {
	setupTestServices(t)
	resetChatFlags(t)

	out, err := executeCommand(t, "chat", writeTestPDF(t), "What is the capacity?")

	require.NoError(t, err)
	assert.Contains(t, out, "It is 10 Ah.")
}

func TestChatCmd_WithFileID(t *testing.T) {
	setupTestServices(t)
	resetChatFlags(t)

	out, err := executeCommand(t, "chat", "--file-id", "file-abc", "What is the capacity?")

	require.NoError(t, err)
	assert.Contains(t, out, "It is 10 Ah.")
}

func TestChatCmd_FileIDWithTwoArgs(t *testing.T) {
	setupTestServices(t)
	resetChatFlags(t)

	_, err := executeCommand(t, "chat", "--file-id", "file-abc", "cell.pdf", "question")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "only the question")
}

func TestChatCmd_OneArgWithoutFileID(t *testing.T) {
	setupTestServices(t)
	resetChatFlags(t)

	_, err := executeCommand(t, "chat", "just-one-arg")

	require.Error(t, err)
}

func TestChatCmd_NotConfigured(t *testing.T) {
	SetServices(Services{})
	resetChatFlags(t)

	_, err := executeCommand(t, "chat", "--file-id", "abc", "question")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
