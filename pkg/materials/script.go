package materials

import (
	"fmt"
	"os"

	zygo "github.com/glycerine/zygomys/zygo"
)

// LoadScript evaluates a catalog script and registers every glass it
// declares. The script is plain zygomys Lisp with two builtins:
//
//	(glass "NAME" b1 b2 b3 c1 c2 c3)  ; dielectric with Sellmeier terms
//	(reflector "NAME")                ; perfect mirror
//
// Each call evaluates in a fresh sandboxed environment, so scripts
// cannot observe each other and a failed script registers nothing.
func LoadScript(source string) ([]*Material, error) {
	var declared []*Material

	env := zygo.NewZlispSandbox()
	defer env.Stop()

	env.AddFunction("glass", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 7 {
			return zygo.SexpNull, fmt.Errorf("glass: want name and 6 Sellmeier terms, got %d args", len(args))
		}

		glassName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("glass: name: %w", err)
		}

		terms := make([]float64, 6)
		for i := range terms {
			terms[i], err = toFloat64(args[i+1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("glass %s: term %d: %w", glassName, i+1, err)
			}
		}

		declared = append(declared, &Material{
			Name: glassName,
			Kind: KindDielectric,
			Dispersion: Sellmeier{
				B1: terms[0], B2: terms[1], B3: terms[2],
				C1: terms[3], C2: terms[4], C3: terms[5],
			},
		})
		return zygo.SexpNull, nil
	})

	env.AddFunction("reflector", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("reflector: want exactly a name, got %d args", len(args))
		}

		glassName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("reflector: name: %w", err)
		}

		declared = append(declared, &Material{Name: glassName, Kind: KindReflector})
		return zygo.SexpNull, nil
	})

	if err := runSandboxed(env, source); err != nil {
		return nil, err
	}

	for _, m := range declared {
		Register(m)
	}
	return declared, nil
}

// LoadScriptFile reads and evaluates a catalog script from disk.
func LoadScriptFile(path string) ([]*Material, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("materials: %w", err)
	}

	declared, err := LoadScript(string(source))
	if err != nil {
		return nil, fmt.Errorf("materials: %s: %w", path, err)
	}
	return declared, nil
}

// runSandboxed evaluates the script, converting interpreter panics
// into errors.
func runSandboxed(env *zygo.Zlisp, source string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during catalog evaluation: %v", r)
		}
	}()

	if err := env.LoadString(source); err != nil {
		return fmt.Errorf("catalog script parse: %w", err)
	}
	if _, err := env.Run(); err != nil {
		return fmt.Errorf("catalog script: %w", err)
	}
	return nil
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T", s)
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T", s)
}
