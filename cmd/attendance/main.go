package main

import (
	"io"
	"log"
	"os"

	studentregister "github.com/gostonefire/studentregister"
	"github.com/gostonefire/studentregister/internal/config"
	"github.com/gostonefire/studentregister/internal/shell"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.LogEnabled() {
		logger = log.New(os.Stderr, "attendance: ", log.LstdFlags)
	}

	register, info, err := studentregister.NewRegister(nil)
	if err != nil {
		log.Fatalf("Failed to create register: %s", err)
	}
	logger.Printf("register ready with %d buckets and room for %d subjects", info.NumberOfBuckets, info.SubjectCapacity)

	if cfg.StudentsFile != "" {
		count, warnings, err := register.LoadBulkFile(cfg.StudentsFile)
		if err != nil {
			log.Fatalf("Failed to load students: %s", err)
		}
		for _, warning := range warnings {
			log.Printf("%s: %s", cfg.StudentsFile, warning)
		}
		logger.Printf("loaded %d students from %s", count, cfg.StudentsFile)
	}

	sh := shell.New(register, os.Stdin, os.Stdout, shell.Options{
		Color:      cfg.ColorEnabled(os.Stdout.Fd()),
		WideView:   cfg.WideView(),
		ReportPath: cfg.ReportPath,
		Logger:     logger,
	})
	if err := sh.Run(); err != nil {
		log.Fatalf("Shell stopped: %s", err)
	}
}
