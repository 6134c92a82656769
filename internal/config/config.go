// Package config reads optional parameter defaults from a config file.
// Values here sit below command-line flags and problem-file headers.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Keys understood in a config file.
const (
	KeyThreshold   = "threshold"
	KeyPseudocount = "pseudocount"
	KeyAlphabet    = "alphabet"
	KeyOutput      = "output"
	KeyThreads     = "threads"
)

// Settings is the parsed config file. Only keys present in the file are
// reported by IsSet.
type Settings struct {
	Path        string
	Threshold   float64
	Pseudocount float64
	Alphabet    string
	Output      string
	Threads     int

	set map[string]bool
}

// IsSet reports whether key was present in the file.
func (s Settings) IsSet(key string) bool { return s.set[key] }

// Load reads path (format taken from its extension). An empty path yields
// empty Settings.
func Load(path string) (Settings, error) {
	s := Settings{Path: path, set: map[string]bool{}}
	if path == "" {
		return s, nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return s, fmt.Errorf("config %s: %w", path, err)
	}
	for _, k := range []string{KeyThreshold, KeyPseudocount, KeyAlphabet, KeyOutput, KeyThreads} {
		s.set[k] = v.IsSet(k)
	}
	s.Threshold = v.GetFloat64(KeyThreshold)
	s.Pseudocount = v.GetFloat64(KeyPseudocount)
	s.Output = v.GetString(KeyOutput)
	s.Threads = v.GetInt(KeyThreads)

	// alphabet may be a string ("ACGT", "A C G T") or a list.
	if lst := v.GetStringSlice(KeyAlphabet); len(lst) > 1 {
		s.Alphabet = strings.Join(lst, " ")
	} else {
		s.Alphabet = v.GetString(KeyAlphabet)
	}
	if s.set[KeyThreads] && s.Threads < 0 {
		return s, fmt.Errorf("config %s: threads must be ≥ 0", path)
	}
	return s, nil
}
