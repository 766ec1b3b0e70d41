package logger

import (
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	type testRow struct {
		name   string
		debug  bool
		expect string
	}

	testData := [...]testRow{
		{
			name:   "quiet",
			debug:  false,
			expect: "hufftree: [INFO] built 3\nhufftree: [ERROR] failed: x\n",
		},
		{
			name:   "verbose",
			debug:  true,
			expect: "hufftree: [DEBUG] dump\nhufftree: [INFO] built 3\nhufftree: [ERROR] failed: x\n",
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var buf strings.Builder
			l := New(&buf, row.debug)
			l.Debugf("dump")
			l.Infof("built %d", 3)
			l.Errorf("failed: %s", "x")
			if l.DebugEnabled() != row.debug {
				t.Errorf("expected DebugEnabled %v", row.debug)
			}
			actual := buf.String()
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}
