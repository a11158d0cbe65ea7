package util

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"
)

//go:embed version.txt
var embeddedVersion string

func GetVersion() string {
	return strings.TrimSpace(embeddedVersion)
}

func GetNameAndVersion() string {
	return fmt.Sprintf("%s / %s", Name, GetVersion())
}

// PublicKeyFingerprint is the SHA256 fingerprint of an SSH key, or "none"
// for sessions without one.
func PublicKeyFingerprint(pk ssh.PublicKey) string {
	if pk == nil {
		return "none"
	}
	return gossh.FingerprintSHA256(pk)
}

func PrettyPrint(i interface{}) string {
	s, _ := json.MarshalIndent(i, "", " ")
	return string(s)
}
