// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "verbose logs debug", verbose: true, wantDebug: true},
		{name: "quiet logs warnings only", verbose: false, wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.verbose)
			require.NoError(t, err)

			core := log.Desugar().Core()
			assert.Equal(t, tt.wantDebug, core.Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.wantDebug, core.Enabled(zapcore.InfoLevel))
			assert.True(t, core.Enabled(zapcore.WarnLevel))
		})
	}
}
