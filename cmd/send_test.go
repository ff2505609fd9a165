package cmd

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mj1618/keycycle/internal/driver"
	"github.com/mj1618/keycycle/internal/model"
)

func TestSendChord(t *testing.T) {
	_, sender := useFakeProvider(t, testWindows())

	result, err := sendChord(newTestDriver(t), model.MustParseChord("Ctrl+Shift+P"))
	if err != nil {
		t.Fatal(err)
	}
	if !result.OK || result.Handle != 42 || result.Key != "ctrl+shift+p" {
		t.Errorf("result = %+v", result)
	}
	if !reflect.DeepEqual(sender.sent(), []string{"ctrl+shift+p"}) {
		t.Errorf("sent = %v", sender.sent())
	}
}

func TestSendChord_NoWindow(t *testing.T) {
	useFakeProvider(t, nil)

	_, err := sendChord(newTestDriver(t), model.MustParseChord("ctrl+s"))
	if !errors.Is(err, driver.ErrNoWindowFound) {
		t.Errorf("expected ErrNoWindowFound, got: %v", err)
	}
}

func TestSendCommand_RequiresOneArg(t *testing.T) {
	if err := sendCmd.Args(sendCmd, nil); err == nil {
		t.Error("expected error with no chord")
	}
	if err := sendCmd.Args(sendCmd, []string{"ctrl+a", "ctrl+c"}); err == nil {
		t.Error("expected error with two chords")
	}
}
