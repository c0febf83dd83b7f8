// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Geek0x0/bignum"
)

func main() {
	mode := flag.String("mode", "eval", "Command: eval, gcd, pow, radix, diag")
	radix := flag.Int("radix", 10, "Radix for the radix command (2-36)")
	flag.Parse()

	switch strings.ToLower(*mode) {
	case "eval":
		handleEval()
	case "gcd":
		requireArgs(2)
		handleGcd(flag.Arg(0), flag.Arg(1))
	case "pow":
		requireArgs(2)
		handlePow(flag.Arg(0), flag.Arg(1))
	case "radix":
		requireArgs(1)
		handleRadix(flag.Arg(0), *radix)
	case "diag":
		handleDiag()
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func requireArgs(n int) {
	if flag.NArg() < n {
		fmt.Fprintln(os.Stderr, "Usage: bignumcli -mode=<eval|gcd|pow|radix|diag> [args...]")
		flag.PrintDefaults()
		os.Exit(2)
	}
}

// handleEval reads one signed decimal expression per line of the form
// "a OP b" (OP in + - * / %) from stdin and prints the result.
func handleEval() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			fmt.Fprintf(os.Stderr, "malformed line %q\n", line)
			continue
		}
		a, err := bignum.ParseIBigRadix(fields[0], 10)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse %q: %v\n", fields[0], err)
			continue
		}
		b, err := bignum.ParseIBigRadix(fields[2], 10)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse %q: %v\n", fields[2], err)
			continue
		}
		result, err := evalOp(a, fields[1], b)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		fmt.Println(result.String())
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read stdin: %v", err)
	}
}

func evalOp(a bignum.IBig, op string, b bignum.IBig) (bignum.IBig, error) {
	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*":
		return a.Mul(b), nil
	case "/":
		return a.Div(b), nil
	case "%":
		return a.Rem(b), nil
	default:
		return bignum.IBig{}, fmt.Errorf("unknown operator %q", op)
	}
}

func handleGcd(as, bs string) {
	a, err := bignum.ParseUBigRadix(as, 10)
	if err != nil {
		log.Fatalf("parse %q: %v", as, err)
	}
	b, err := bignum.ParseUBigRadix(bs, 10)
	if err != nil {
		log.Fatalf("parse %q: %v", bs, err)
	}
	fmt.Println(a.Gcd(b).String())
}

func handlePow(bases, exps string) {
	base, err := bignum.ParseIBigRadix(bases, 10)
	if err != nil {
		log.Fatalf("parse %q: %v", bases, err)
	}
	var exp int
	if _, err := fmt.Sscanf(exps, "%d", &exp); err != nil {
		log.Fatalf("parse exponent %q: %v", exps, err)
	}
	fmt.Println(base.Pow(exp).String())
}

func handleRadix(s string, radix int) {
	v, err := bignum.ParseIBigRadix(s, 10)
	if err != nil {
		log.Fatalf("parse %q: %v", s, err)
	}
	fmt.Println(v.FormatRadix(radix, false))
}

func handleDiag() {
	fmt.Println(bignum.WordOpsDiagnostic())
}
