package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/asterank/orbit3d"
	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/viper"
)

// This reads a scenario file, prints the position of the body and exports its orbit path.

const defaultScenario = "~~unset~~"

var (
	scenario string
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "log path construction")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	dir, name := filepath.Split(scenario)
	if dir == "" {
		dir = "."
	}
	viper.AddConfigPath(dir)
	viper.SetConfigName(strings.TrimSuffix(name, ".toml"))
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("%s: Error %s", scenario, err)
	}
	conf, err := orbit3d.ConfigFromViper(viper.GetViper())
	if err != nil {
		log.Fatalf("invalid configuration: %s", err)
	}

	logger := kitlog.NewNopLogger()
	if verbose {
		logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
		logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
	}
	sampler := conf.Sampler(logger)

	el, err := readBody()
	if err != nil {
		log.Fatal(err)
	}
	if err := el.Validate(); err != nil {
		log.Fatalf("invalid elements: %s", err)
	}
	var opts orbit3d.DisplayOptions
	if err := viper.UnmarshalKey("display", &opts); err != nil {
		log.Fatalf("display: %s", err)
	}
	if viper.IsSet("time") {
		opts.JED = confReadJDEorTime("time")
	}
	body := orbit3d.NewBody(el, opts, sampler)

	marker, err := body.Marker(body.Opts.JED)
	if err != nil {
		log.Fatalf("position of %s: %s", el.Name, err)
	}
	st, err := sampler.Frame.StateAt(el, body.Opts.JED)
	if err != nil {
		log.Fatalf("state of %s: %s", el.Name, err)
	}
	fmt.Printf("%s @ JED %.5f (%s): %s [%s, frame %s]\n", el.Name, body.Opts.JED, julian.JDToTime(body.Opts.JED).UTC().Format(time.RFC3339), marker.Position, marker.Kind, conf.ReferenceName)
	fmt.Println(describe(el, st))

	if !viper.GetBool("export.enabled") {
		return
	}
	path, err := body.Ellipse()
	if err != nil {
		log.Fatalf("path of %s: %s", el.Name, err)
	}
	if err := export(conf, path, body.Opts.Color); err != nil {
		log.Fatalf("export: %s", err)
	}
}

// describe summarizes the orbit of el and where st sits on it.
func describe(el orbit3d.OrbitalElements, st orbit3d.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "q=%.4f AU Q=%.4f AU", el.Perihelion(), el.Aphelion())
	if P, err := el.Period(); err == nil {
		fmt.Fprintf(&b, " P=%.1f d", P)
	}
	fmt.Fprintf(&b, " λ=%.3f° β=%.3f°", st.Longitude(), st.Latitude())
	return b.String()
}

// readBody returns the body either from the catalog or from its elements.
func readBody() (orbit3d.OrbitalElements, error) {
	if viper.IsSet("body.name") && !viper.IsSet("body.a") {
		return orbit3d.BodyFromString(viper.GetString("body.name"))
	}
	var el orbit3d.OrbitalElements
	if err := viper.UnmarshalKey("body", &el); err != nil {
		return el, fmt.Errorf("body: %s", err)
	}
	if el.Name == "" {
		el.Name = viper.GetString("body.name")
	}
	return el, nil
}

func export(conf orbit3d.Config, path orbit3d.OrbitPath, color uint32) error {
	base := strings.Replace(strings.ToLower(path.Name), " ", "-", -1)
	if base == "" {
		base = "orbit"
	}
	xyzName := fmt.Sprintf("path-%s.xyz", base)
	xyz, err := os.Create(filepath.Join(conf.OutputDir, xyzName))
	if err != nil {
		return err
	}
	defer xyz.Close()
	if err := orbit3d.WriteInterpolatedStates(xyz, path, conf.Scale); err != nil {
		return err
	}

	cat, err := os.Create(filepath.Join(conf.OutputDir, fmt.Sprintf("catalog-%s.json", base)))
	if err != nil {
		return err
	}
	defer cat.Close()
	if err := orbit3d.WriteCatalog(cat, orbit3d.NewCatalog(path, xyzName, color)); err != nil {
		return err
	}

	if viper.GetBool("export.csv") {
		f, err := os.Create(filepath.Join(conf.OutputDir, fmt.Sprintf("path-%s.csv", base)))
		if err != nil {
			return err
		}
		defer f.Close()
		if err := orbit3d.WriteCSV(f, path); err != nil {
			return err
		}
	}
	fmt.Printf("Saved %d positions of %s to %s.\n", path.Len(), path.Name, conf.OutputDir)
	return nil
}

func confReadJDEorTime(key string) float64 {
	if jde := viper.GetFloat64(key); jde != 0 {
		return jde
	}
	return julian.TimeToJD(viper.GetTime(key))
}
