package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"wgns/domain/mode"
	"wgns/infrastructure/cryptography/wgkey"
	"wgns/presentation"
	"wgns/presentation/elevation"
	"wgns/presentation/mode_selection"
	"wgns/settings"
)

const PackageName = "wgns"

func main() {
	am := mode_selection.NewArgsAppMode(os.Args)
	selectedMode, selectedModeErr := am.Mode()
	if selectedModeErr != nil {
		fmt.Fprintln(os.Stderr, selectedModeErr)
		printUsage()
		os.Exit(1)
	}

	if selectedMode == mode.Keygen {
		if keygenErr := printKeyPair(); keygenErr != nil {
			log.Fatal(keygenErr)
		}
		return
	}

	processElevation := elevation.NewProcessElevation()
	if !processElevation.IsElevated() {
		if escalateErr := elevation.NewSudoEscalator().Escalate(os.Args); escalateErr != nil {
			log.Fatalf("%s requires root privileges: %v", PackageName, escalateErr)
		}
		return
	}

	appCtx, appCtxCancel := context.WithCancel(context.Background())
	defer appCtxCancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupt received. Shutting down...")
		appCtxCancel()
	}()

	deps := presentation.NewDependencies(settings.NewDefaultReader(settings.NewDefaultResolver()))
	if initErr := deps.Initialize(); initErr != nil {
		log.Fatal(initErr)
	}
	runner := presentation.NewRunner(deps)

	switch selectedMode {
	case mode.Up:
		identifier := ""
		if len(os.Args) > 2 {
			identifier = os.Args[2]
		}
		if upErr := runner.Up(identifier); upErr != nil {
			log.Fatal(upErr)
		}
	case mode.Down:
		if downErr := runner.Down(); downErr != nil {
			log.Fatal(downErr)
		}
	case mode.Exec:
		if execErr := runner.Exec(os.Args[2:]); execErr != nil {
			log.Fatal(execErr)
		}
	case mode.Status:
		isolated, statusErr := runner.Status(appCtx)
		if statusErr != nil {
			log.Fatal(statusErr)
		}
		if !isolated {
			os.Exit(1)
		}
	default:
		printUsage()
		os.Exit(1)
	}
}

func printKeyPair() error {
	pair, err := wgkey.NewKeyPair()
	if err != nil {
		return err
	}
	fmt.Printf("private key: %s\n", pair.Private)
	fmt.Printf("public key:  %s\n", pair.Public)
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: %s <command>
Commands:
  up [identifier]       - move physical interfaces into the namespace and bring the tunnel up
  down                  - tear the tunnel down and return the interfaces
  exec <command> [args] - run a command inside the physical namespace
  status                - report isolation state
  keygen                - generate a key pair
`, PackageName)
}
