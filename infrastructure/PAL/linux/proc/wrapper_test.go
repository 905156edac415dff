package proc

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/sys/unix"
)

type mockCommander struct {
	runErr error
	calls  []string
}

func (m *mockCommander) Output(name string, args ...string) ([]byte, error) {
	return nil, nil
}

func (m *mockCommander) CombinedOutput(name string, args ...string) ([]byte, error) {
	return nil, nil
}

func (m *mockCommander) Run(name string, args ...string) error {
	m.calls = append(m.calls, strings.Join(append([]string{name}, args...), " "))
	return m.runErr
}

func TestKillall_SwallowsAbsenceOfProcess(t *testing.T) {
	commander := &mockCommander{runErr: errors.New("no process found")}
	w := NewWrapper(commander)

	if err := w.Killall("wpa_supplicant", "dhcpcd", "dnsmasq"); err != nil {
		t.Fatalf("expected tolerated failure, got %v", err)
	}
	if len(commander.calls) != 1 || commander.calls[0] != "killall wpa_supplicant dhcpcd dnsmasq" {
		t.Fatalf("unexpected calls: %v", commander.calls)
	}
}

func TestKill(t *testing.T) {
	t.Run("terminates each pid", func(t *testing.T) {
		var killed []int
		w := &Wrapper{kill: func(pid int, sig unix.Signal) error {
			if sig != unix.SIGTERM {
				t.Fatalf("expected SIGTERM, got %v", sig)
			}
			killed = append(killed, pid)
			return nil
		}}
		if err := w.Kill([]int{10, 20}); err != nil {
			t.Fatal(err)
		}
		if len(killed) != 2 || killed[0] != 10 || killed[1] != 20 {
			t.Fatalf("unexpected pids: %v", killed)
		}
	})
	t.Run("tolerates already-gone pid", func(t *testing.T) {
		w := &Wrapper{kill: func(pid int, sig unix.Signal) error {
			return unix.ESRCH
		}}
		if err := w.Kill([]int{10}); err != nil {
			t.Fatalf("expected ESRCH to be tolerated, got %v", err)
		}
	})
	t.Run("propagates other errors", func(t *testing.T) {
		w := &Wrapper{kill: func(pid int, sig unix.Signal) error {
			return unix.EPERM
		}}
		if err := w.Kill([]int{10}); err == nil {
			t.Fatal("expected error")
		}
	})
}
