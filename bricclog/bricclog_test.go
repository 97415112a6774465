package bricclog

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestFireAndLatest(t *testing.T) {
	log := New()

	logger := logrus.New()
	logger.AddHook(log)

	logger.Info("hello")
	logger.Warn("careful")

	entries := log.Latest()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %v", len(entries))
	}

	if entries[0].Message != "hello" || entries[0].Level != "info" {
		t.Errorf("unexpected first entry %+v", entries[0])
	}

	if entries[1].Message != "careful" || entries[1].Level != "warning" {
		t.Errorf("unexpected second entry %+v", entries[1])
	}
}

func TestLimit(t *testing.T) {
	log := New()
	log.limit = 10

	logger := logrus.New()
	logger.AddHook(log)

	for i := 0; i < 25; i++ {
		logger.Infof("entry %d", i)
	}

	entries := log.Latest()
	if len(entries) != 10 {
		t.Fatalf("expected 10 retained entries, got %v", len(entries))
	}

	if entries[0].Message != fmt.Sprintf("entry %d", 15) {
		t.Errorf("expected oldest retained entry 15, got %v", entries[0].Message)
	}
}
