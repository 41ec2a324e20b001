package main

import (
	"os"
	"strings"

	"github.com/binzume/quaternion/geom"
	"github.com/binzume/quaternion/gltfutil"
	"github.com/cockroachdb/errors"
	"golang.org/x/text/width"
	"gopkg.in/yaml.v2"
)

type operands struct {
	First  geom.Quaternion
	Second geom.Quaternion
	Scale  float64
}

type config struct {
	First  *geom.Quaternion `yaml:"first"`
	Second *geom.Quaternion `yaml:"second"`
	Scale  *float64         `yaml:"scale"`
}

func loadConfig(path string, ops *operands) error {
	r, err := os.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	var conf config
	if err := yaml.NewDecoder(r).Decode(&conf); err != nil {
		return errors.Wrapf(err, "config %s", path)
	}
	if conf.First != nil {
		ops.First = *conf.First
	}
	if conf.Second != nil {
		ops.Second = *conf.Second
	}
	if conf.Scale != nil {
		ops.Scale = *conf.Scale
	}
	return nil
}

// loadNodeRotations replaces operands with rotations of the named nodes.
func loadNodeRotations(path, nodes string, ops *operands) error {
	doc, err := gltfutil.Load(path)
	if err != nil {
		return err
	}
	dst := []*geom.Quaternion{&ops.First, &ops.Second}
	for i, name := range strings.Split(nodes, ",") {
		if i >= len(dst) {
			break
		}
		q, err := gltfutil.NodeRotation(doc, strings.TrimSpace(name))
		if err != nil {
			return errors.Wrapf(err, "gltf %s", path)
		}
		*dst[i] = q
	}
	return nil
}

// parseArg accepts full-width digits and signs as well.
func parseArg(s string) (geom.Quaternion, error) {
	return geom.Parse(width.Narrow.String(s))
}
