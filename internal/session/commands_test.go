package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	testCases := []struct {
		input string
		want  Command
	}{
		{input: "1", want: CommandSearch},
		{input: " 4 ", want: CommandNews},
		{input: "10", want: CommandExchange},
		{input: "0", want: CommandCredits},
		{input: "Q", want: CommandDisconnect},
		{input: "disconnect", want: CommandDisconnect},
		{input: "11", want: CommandUnknown},
		{input: "hola", want: CommandUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCommand(tc.input))
		})
	}
}

func TestEveryMenuCommandHasHandler(t *testing.T) {
	for key, cmd := range commandKeys {
		_, ok := handlers[cmd]
		assert.True(t, ok, "command %q (%s) has no handler", key, cmd)
	}
	assert.Len(t, handlers, len(commandKeys))
}

func TestSubModeCommands(t *testing.T) {
	assert.True(t, CommandLLM.SubMode())
	assert.True(t, CommandExchange.SubMode())
	assert.False(t, CommandSearch.SubMode())
	assert.False(t, CommandCredits.SubMode())
}

func TestCutField(t *testing.T) {
	testCases := []struct {
		line  string
		head  string
		rest  string
		found bool
	}{
		{line: "Bob hola mundo", head: "Bob", rest: "hola mundo", found: true},
		{line: "Bob\thola mundo", head: "Bob", rest: "hola mundo", found: true},
		{line: "Bob \t  hola", head: "Bob", rest: "hola", found: true},
		{line: "Bob", head: "Bob", found: false},
	}

	for _, tc := range testCases {
		head, rest, found := cutField(tc.line)
		assert.Equal(t, tc.head, head, tc.line)
		assert.Equal(t, tc.rest, rest, tc.line)
		assert.Equal(t, tc.found, found, tc.line)
	}
}

func TestChooseModel(t *testing.T) {
	models := []string{"qwen", "llama"}

	assert.Equal(t, "llama", chooseModel(models, "2"))
	assert.Equal(t, "3", chooseModel(models, "3"))
	assert.Equal(t, "mistral", chooseModel(models, " mistral "))
}
