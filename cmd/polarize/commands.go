package main

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/lukaszgryglicki/polarize/internal/optics"
)

type app struct {
	settings optics.Settings
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "polarize",
		Short:         "Evaluate Mueller matrices and polarized optical trains",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := optics.LoadSettings()
			if err != nil {
				return err
			}
			a.settings = s
			optics.Debug = s.Debug
			return nil
		},
	}
	root.AddCommand(a.runCmd(), a.elementCmd())
	return root
}

func (a *app) runCmd() *cobra.Command {
	var profile string
	cmd := &cobra.Command{
		Use:   "run [config]",
		Short: "Push a beam through the optical train described by a JSON or YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if profile != "" {
				f, err := os.Create(profile)
				if err != nil {
					return err
				}
				if err := pprof.StartCPUProfile(f); err != nil {
					_ = f.Close()
					return err
				}
				defer func() {
					pprof.StopCPUProfile()
					_ = f.Close()
				}()
			}
			cfg := a.settings.Config
			if len(args) > 0 {
				cfg = args[0]
			}
			res, err := optics.Run(cfg)
			if err != nil {
				return err
			}
			a.printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVar(&profile, "profile", "", "write a CPU profile to this file")
	return cmd
}

func (a *app) elementCmd() *cobra.Command {
	var (
		ec  optics.ElementCfg
		cos float64
		val float64
	)
	cmd := &cobra.Command{
		Use:       "element <kind>",
		Short:     "Print the Mueller matrix of a single element in its own frame",
		Args:      cobra.ExactArgs(1),
		ValidArgs: optics.Kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			ec.Kind = args[0]
			if cmd.Flags().Changed("value") {
				ec.Value = &val
			}
			if ec.Normal.IsZero() {
				ec.Normal = optics.Vec3{0, 0, 1}
			}
			M, err := ec.LocalMatrix(cos)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s:\n", strings.ToLower(ec.Kind))
			a.printMatrix(w, M)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&ec.AngleDeg, "angle", 0, "element orientation in degrees")
	f.Float64Var(&ec.PhaseDeg, "phase", 0, "retardance in degrees")
	f.Float64Var(&val, "value", 1, "transmission/attenuation value in [0, 1]")
	f.Float64Var(&ec.X, "x", 1, "diattenuator field transmission at 0°")
	f.Float64Var(&ec.Y, "y", 1, "diattenuator field transmission at 90°")
	f.BoolVar(&ec.Right, "right", false, "right-handed circular polarizer")
	f.Float64Var(&ec.Eta, "eta", 1.5, "relative refractive index (surfaces)")
	f.Float64Var(&ec.K, "k", 0, "extinction coefficient (reflecting surfaces)")
	f.Float64Var(&cos, "cos", 1, "incidence cosine (surfaces)")
	return cmd
}

func (a *app) printMatrix(w io.Writer, M optics.Matrix) {
	v := M.Values(0)
	data := make([]float64, 0, 16)
	for r := range v {
		data = append(data, v[r][:]...)
	}
	fmt.Fprintf(w, "  %.*g\n", a.precision(), mat.Formatted(mat.NewDense(4, 4, data), mat.Prefix("  "), mat.Squeeze()))
}

func (a *app) precision() int {
	if a.settings.Precision <= 0 {
		return optics.DefaultPrecision
	}
	return a.settings.Precision
}

func (a *app) printResult(w io.Writer, res *optics.Result) {
	p := a.precision()
	s := res.StokesValues()
	fmt.Fprintf(w, "stokes:    [%.*g %.*g %.*g %.*g]\n", p, s[0], p, s[1], p, s[2], p, s[3])
	fmt.Fprintf(w, "dop:       %.*g\n", p, res.DoP())
	fmt.Fprintf(w, "dolp:      %.*g\n", p, res.DoLP())
	fmt.Fprintf(w, "aolp:      %.*g deg\n", p, res.AoLPDeg())
	fmt.Fprintf(w, "direction: [%.*g %.*g %.*g]\n", p, res.Direction.X, p, res.Direction.Y, p, res.Direction.Z)
	fmt.Fprintf(w, "basis:     [%.*g %.*g %.*g]\n", p, res.Basis.X, p, res.Basis.Y, p, res.Basis.Z)
	for i, st := range res.Steps {
		fmt.Fprintf(w, "step %d %-12s [%.*g %.*g %.*g %.*g] dop=%.*g\n", i, st.Element,
			p, st.Stokes[0], p, st.Stokes[1], p, st.Stokes[2], p, st.Stokes[3], p, st.DoP)
	}
	fmt.Fprintln(w, "mueller:")
	a.printMatrix(w, res.Path)
}
