package cli_test

import (
	"os"
	"testing"
)

// isaLine is a fully padded interchange control header; delimiter detection
// reads the element separator from byte 3 and the segment terminator from
// byte 105.
const isaLine = "ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *240101*1200*U*00401*000000001*0*P*:"

// sampleSet is a transaction-set fragment whose SE count is already correct.
const sampleSet = "ST*835*0001~BPR*I*100~SE*3*0001~"

// sampleInterchange wraps a correct transaction set in ISA/GS envelopes.
func sampleInterchange() string {
	return isaLine + "~" +
		"GS*HP*SENDER*RECEIVER*20240101*1200*1*X*004010~" +
		"ST*835*0001~" +
		"BPR*I*100~" +
		"SE*3*0001~" +
		"GE*1*1~" +
		"IEA*1*000000001~"
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	err := os.WriteFile(path, []byte(content), 0o600)
	if err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
