package ratelimit

import (
	"testing"
	"time"
)

func TestAllowWithinLimit(t *testing.T) {
	l := NewLimiter(3)
	defer l.Stop()

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("запрос %d не должен блокироваться", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("четвертый запрос в окне должен блокироваться")
	}
}

func TestClientsCountedSeparately(t *testing.T) {
	l := NewLimiter(1)
	defer l.Stop()

	if !l.Allow("10.0.0.1") {
		t.Fatal("первый запрос клиента должен проходить")
	}
	if l.Allow("10.0.0.1") {
		t.Error("второй запрос того же клиента должен блокироваться")
	}
	if !l.Allow("10.0.0.2") {
		t.Error("другой клиент не должен зависеть от чужого лимита")
	}
}

func TestWindowResets(t *testing.T) {
	l := NewLimiter(1)
	defer l.Stop()

	if !l.Allow("10.0.0.3") {
		t.Fatal("первый запрос должен проходить")
	}

	// Отматываем окно клиента назад вместо ожидания минуты
	l.mu.Lock()
	l.clients["10.0.0.3"].lastRequest = l.clients["10.0.0.3"].lastRequest.Add(-2 * time.Minute)
	l.mu.Unlock()

	if !l.Allow("10.0.0.3") {
		t.Error("после истечения окна запрос должен проходить")
	}
}
