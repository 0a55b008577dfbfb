// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/pellegre/helios/internal/config"
	"github.com/pellegre/helios/internal/logx"
	"github.com/pellegre/helios/internal/sim"
)

func main() {
	threads := flag.Int("threads", runtime.NumCPU(), "worker pool size")
	analog := flag.Bool("analog-capture", false, "use analog (kill-on-capture) absorption instead of implicit weight reduction")
	checkDeterminism := flag.Bool("check-determinism", false, "run the batch schedule at threads=1 and threads=N and report any mismatch instead of reporting k-eff")
	flag.Parse()

	log := logx.New(os.Stdout)

	if flag.NArg() < 1 {
		log.Error("usage: helios [flags] <input.json>")
		os.Exit(1)
	}
	fnamepath := flag.Arg(0)

	log.BMsg("helios -- continuous-energy Monte Carlo neutron transport")

	doc, err := config.Load(fnamepath)
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	env, err := doc.Build(log)
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	seed := uint64(1)
	if doc.Settings.Seed != nil {
		seed = *doc.Settings.Seed
	}

	if *checkDeterminism {
		ok, maxDiff := sim.RunDeterminismCheck(env, doc.Settings.Particles, doc.Settings.Inactive, doc.Settings.Batches, seed, *threads)
		if !ok {
			log.Error("determinism check FAILED: max |dk| across thread counts = %g", maxDiff)
			os.Exit(1)
		}
		log.Ok("determinism check passed: max |dk| across thread counts = %g", maxDiff)
		return
	}

	s := doc.BuildSimulation(env)
	s.Threads = *threads
	s.AnalogCapture = *analog

	result := s.Run()
	report(log, result)
}

// report prints the run's batch-by-batch k and the final summary, plus
// the DomainError diagnostic tally.
func report(log *logx.Logger, result sim.Result) {
	for _, b := range result.Batches {
		status := "inactive"
		if b.Active {
			status = "active"
		}
		log.Msg("batch %3d (%s): k = %.6f", b.Index, status, b.K)
	}
	log.BOk("k-eff = %.6f +/- %.6f", result.KMean, result.KStdDev)

	if total := result.Diagnostics.Total(); total > 0 {
		log.Warn("%d domain errors recorded during transport", total)
	}
}
