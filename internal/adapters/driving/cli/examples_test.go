package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExamplesCmd_ListsCorpus(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"examples"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "QUESTION")
	assert.Contains(t, out, "How many t-shirts do we have left for Nike in XS size and white color?")
	// SQL columns are hidden without --full.
	assert.NotContains(t, out, "SELECT")
}

func TestExamplesCmd_FullIncludesSQL(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"examples", "--full"})
	defer func() {
		rootCmd.SetArgs(nil)
		examplesFull = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "SELECT")
}

func TestAskCmd_RequiresQuestion(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
	assert.Error(t, askCmd.Args(askCmd, nil))
	assert.NoError(t, askCmd.Args(askCmd, []string{"How many Nike shirts?"}))
}
