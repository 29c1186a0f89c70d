package connectivity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestWatcher_NotifiesOnlyOnTransitions(t *testing.T) {
	connected := true
	checker := Func(func(context.Context) bool { return connected })
	w := NewWatcher(checker, time.Minute, nil)

	var got []bool
	w.Subscribe(func(online bool) { got = append(got, online) })

	ctx := context.Background()
	w.poll(ctx) // online -> online: no notification
	if len(got) != 0 {
		t.Fatalf("notifications = %v, want none without a transition", got)
	}

	connected = false
	w.poll(ctx)
	w.poll(ctx) // still offline: no second notification
	if len(got) != 1 || got[0] != false {
		t.Fatalf("notifications = %v, want exactly one offline transition", got)
	}
	if w.Online() {
		t.Fatal("Online = true, want false after offline probe")
	}

	connected = true
	w.poll(ctx)
	if len(got) != 2 || got[1] != true {
		t.Fatalf("notifications = %v, want offline then online", got)
	}
}

func TestWatcher_UnsubscribeStopsNotifications(t *testing.T) {
	connected := true
	w := NewWatcher(Func(func(context.Context) bool { return connected }), time.Minute, nil)

	calls := 0
	unsub := w.Subscribe(func(bool) { calls++ })
	unsub()

	connected = false
	w.poll(context.Background())
	if calls != 0 {
		t.Fatalf("calls = %d, want 0 after unsubscribe", calls)
	}
}

func TestWatcher_IsConnectedAnswersFromLastProbe(t *testing.T) {
	probes := 0
	w := NewWatcher(Func(func(context.Context) bool {
		probes++
		return false
	}), time.Minute, nil)

	ctx := context.Background()
	if !w.IsConnected(ctx) {
		t.Fatal("IsConnected = false before any probe, want the online default")
	}
	w.poll(ctx)
	before := probes
	if w.IsConnected(ctx) {
		t.Fatal("IsConnected = true after offline probe, want false")
	}
	if probes != before {
		t.Fatalf("IsConnected probed inline: %d extra probes", probes-before)
	}
}

func TestProbeChecker_AnyResponseCountsAsOnline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	p := NewProbeChecker(server.URL, time.Second, nil)
	if !p.IsConnected(context.Background()) {
		t.Fatal("IsConnected = false for a responding server, want true")
	}
}

func TestProbeChecker_TransportFailureIsOffline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	p := NewProbeChecker(server.URL, time.Second, nil)
	if p.IsConnected(context.Background()) {
		t.Fatal("IsConnected = true for a refused connection, want false")
	}
}
