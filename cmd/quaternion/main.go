package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/binzume/quaternion/geom"
	"go.uber.org/zap"
)

func newLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.Sugar()
}

func printResult(w io.Writer, label string, q geom.Quaternion, err error) {
	if err != nil {
		fmt.Fprintf(w, "%s: error: %v\n", label, err)
		return
	}
	fmt.Fprintf(w, "%s: %v\n", label, q)
}

func run(w io.Writer, ops *operands) {
	q1, q2 := ops.First, ops.Second

	fmt.Fprintln(w, "first:", q1)
	fmt.Fprintln(w, "real:", q1.Real())
	fmt.Fprintln(w, "imagi:", q1.I())
	fmt.Fprintln(w, "imagj:", q1.J())
	fmt.Fprintln(w, "imagk:", q1.K())
	fmt.Fprintln(w, "isZero:", q1.IsZero())
	fmt.Fprintln(w, "conjugate:", q1.Conjugate())
	fmt.Fprintln(w, "opposite:", q1.Opposite())
	fmt.Fprintln(w, "hash:", q1.Hash())

	cp := q1
	fmt.Fprintln(w, "copy equals to original:", cp.Equal(q1))
	fmt.Fprintln(w, "copy hash:", cp.Hash())
	res, err := geom.Parse(q1.String())
	fmt.Fprintln(w, "string conversion equals to original:", err == nil && res.Equal(q1))

	fmt.Fprintln(w, "second:", q2)
	fmt.Fprintln(w, "hash:", q2.Hash())
	fmt.Fprintln(w, "equals:", q1.Equal(q2))
	fmt.Fprintln(w, "plus:", q1.Plus(q2))
	fmt.Fprintln(w, "times:", q1.Times(q2))
	fmt.Fprintln(w, "minus:", q1.Minus(q2))
	fmt.Fprintf(w, "scale(%v): %v\n", ops.Scale, q1.Scale(ops.Scale))
	fmt.Fprintln(w, "norm:", q1.Norm())

	inv, err := q1.Inverse()
	printResult(w, "inverse", inv, err)
	r, err := q1.DivideByRight(q2)
	printResult(w, "divideByRight", r, err)
	l, err := q1.DivideByLeft(q2)
	printResult(w, "divideByLeft", l, err)
	fmt.Fprintln(w, "dotMult:", q1.DotMult(q2))
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [first [second]]\n", os.Args[0])
		flag.PrintDefaults()
	}
	configFile := flag.String("config", "", "operands file (.yaml)")
	gltfFile := flag.String("gltf", "", "read operands from node rotations (.glb, .gltf)")
	nodes := flag.String("node", "", "node names for -gltf: first[,second]")
	scale := flag.Float64("scale", 2, "coefficient for scale")
	verbose := flag.Bool("v", false, "debug log")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	ops := &operands{
		First:  geom.New(-1, 1, 2, -2),
		Second: geom.New(1, -2, -1, 2),
		Scale:  *scale,
	}

	if *configFile != "" {
		if err := loadConfig(*configFile, ops); err != nil {
			logger.Fatalw("failed to load config", "file", *configFile, "error", err)
		}
		logger.Debugw("config loaded", "file", *configFile)
	}
	if *gltfFile != "" {
		if *nodes == "" {
			logger.Fatal("-node is required with -gltf")
		}
		if err := loadNodeRotations(*gltfFile, *nodes, ops); err != nil {
			logger.Fatalw("failed to load rotations", "file", *gltfFile, "error", err)
		}
		logger.Debugw("rotations loaded", "file", *gltfFile, "nodes", *nodes)
	}

	dst := []*geom.Quaternion{&ops.First, &ops.Second}
	for i, arg := range flag.Args() {
		if i >= len(dst) {
			logger.Warnw("extra argument ignored", "arg", arg)
			continue
		}
		q, err := parseArg(arg)
		if err != nil {
			logger.Fatalw("invalid argument", "arg", arg, "error", err)
		}
		*dst[i] = q
	}

	run(os.Stdout, ops)
}
