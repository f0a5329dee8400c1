package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"minify", "clean", "languages", "version", "completion"} {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}
}

func TestListLanguagesAlias(t *testing.T) {
	c, _, err := rootCmd.Find([]string{"list-languages"})
	require.NoError(t, err)
	assert.Equal(t, "languages", c.Name())
}

func TestMinifyFlagDefaults(t *testing.T) {
	flags := minifyCmd.Flags()

	suffix := flags.Lookup("suffix")
	require.NotNil(t, suffix)
	assert.Equal(t, ".min", suffix.DefValue)

	skip := flags.Lookup("skip")
	require.NotNil(t, skip)
	assert.Equal(t, "[__pycache__]", skip.DefValue)

	for _, name := range []string{"languages", "extensions", "exclude"} {
		assert.NotNil(t, flags.Lookup(name), name)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("quiet"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("log-level"))
}
