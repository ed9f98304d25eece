package config

import (
	"testing"

	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		filesystem.SetMemMapFs()

		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.AnilibriaURL), ShouldEqual, "https://anilibria.tv")
			So(viper.GetStringSlice(key.DefaultSources), ShouldContain, "anilibria")
		})

		Convey("Every defined key should be registered", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("tracker.cache_hours")
			So(result, ShouldEqual, "tracker_cache_hours")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a field", t, func() {
		f := Default[key.TrackerEndpoint]

		Convey("Env should be prefixed with the app name", func() {
			So(f.Env(), ShouldEqual, "STREAMKIT_TRACKER_ENDPOINT")
		})

		Convey("MarshalJSON should expose the type", func() {
			b, err := f.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(b), ShouldContainSubstring, `"type":"string"`)
		})

		Convey("Pretty should mention the key", func() {
			So(f.Pretty(), ShouldContainSubstring, key.TrackerEndpoint)
		})
	})
}
