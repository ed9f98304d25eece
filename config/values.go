package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/anisan-cli/streamkit/constant"
	"github.com/anisan-cli/streamkit/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// File is the path of the config file.
func File() string {
	return filepath.Join(where.Config(), constant.Streamkit+".toml")
}

// UnknownKeyError is returned for keys that are not registered in Default.
type UnknownKeyError struct {
	Key     string
	Closest string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %s, did you mean %s?", e.Key, e.Closest)
}

// Lookup returns the field registered for k.
func Lookup(k string) (Field, error) {
	if field, ok := Default[k]; ok {
		return field, nil
	}
	return Field{}, &UnknownKeyError{Key: k, Closest: closest(k)}
}

// closest guesses the key that was meant: a fuzzy match when one exists, the key at the smallest edit distance otherwise.
func closest(k string) string {
	keys := lo.Keys(Default)

	if ranks := fuzzy.RankFindNormalizedFold(k, keys); len(ranks) > 0 {
		return lo.MinBy(ranks, func(a, b fuzzy.Rank) bool {
			return a.Distance < b.Distance || (a.Distance == b.Distance && a.Target < b.Target)
		}).Target
	}

	return lo.MinBy(keys, func(a, b string) bool {
		da, db := levenshtein.Distance(k, a), levenshtein.Distance(k, b)
		return da < db || (da == db && a < b)
	})
}

// Parse converts raw command-line values to the type of the field's default.
func (f *Field) Parse(raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, errors.New("value is required")
	}

	switch f.Value.(type) {
	case string:
		return raw[0], nil
	case int:
		v, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw[0])
		}
		return v, nil
	case bool:
		v, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw[0])
		}
		return v, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported type %s of %s", f.typeName(), f.Key)
	}
}

// Write saves the current configuration, creating the file when it does not exist.
func Write() error {
	err := viper.WriteConfig()
	if errors.As(err, new(viper.ConfigFileNotFoundError)) {
		return viper.SafeWriteConfigAs(File())
	}
	return err
}
