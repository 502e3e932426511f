package async

import (
	"context"
	"errors"
	"testing"
)

func TestExecute_FanOutToAllSuccessHandlers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	first, second := "", ""
	caught := false

	r := Resolved("ok")
	r.Then(func(v string) { first = v }).
		Then(func(v string) { second = v }).
		Catch(func(err error) { caught = true })
	r.Execute(ctx)

	if first != "ok" || second != "ok" {
		t.Fatalf("expected both success handlers to fire; first=%q second=%q", first, second)
	}
	if caught {
		t.Fatalf("failure handler must not fire on resolve")
	}
	if !r.Executed() || !r.Settled() {
		t.Fatalf("expected executed and settled; executed=%v settled=%v", r.Executed(), r.Settled())
	}
}

func TestExecute_RejectPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var got error
	succeeded := false

	r := Rejected[int](errors.New("down")).
		Then(func(int) { succeeded = true }).
		Catch(func(err error) { got = err })
	r.Execute(ctx)

	if got == nil || got.Error() != "down" {
		t.Fatalf("expected the rejection error, got: %v", got)
	}
	if succeeded {
		t.Fatalf("success handler must not fire on reject")
	}
}

func TestExecute_FirstSettlementWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	resolves, rejects := 0, 0
	r := New(func(_ context.Context, resolve func(int), reject func(error)) {
		resolve(1)
		resolve(2)
		reject(errors.New("late"))
	})
	r.Then(func(int) { resolves++ }).Catch(func(error) { rejects++ })
	r.Execute(ctx)

	if resolves != 1 || rejects != 0 {
		t.Fatalf("expected a single resolve dispatch; resolves=%d rejects=%d", resolves, rejects)
	}
}

func TestExecute_HandlersRunInRegistrationOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var order []int
	r := Resolved(0)
	for i := 1; i <= 3; i++ {
		i := i
		r.Then(func(int) { order = append(order, i) })
	}
	r.Execute(ctx)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("expected handlers in registration order, got %v", order)
	}
}

func TestExecute_LateRegistrationIsIgnored(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var settle func(int)
	r := New(func(_ context.Context, res func(int), _ func(error)) {
		settle = res
	})

	early := false
	r.Then(func(int) { early = true })
	r.Execute(ctx)

	late := false
	r.Then(func(int) { late = true })

	settle(5)
	if !early {
		t.Fatalf("handler registered before Execute must fire")
	}
	if late {
		t.Fatalf("handler registered after Execute must not fire")
	}
}

func TestExecute_AbandonedExecutorNeverSettles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fired := false
	r := New(func(context.Context, func(int), func(error)) {}).
		Then(func(int) { fired = true })
	r.Execute(ctx)

	if fired {
		t.Fatalf("no settlement, no handlers")
	}
	if !r.Executed() || r.Settled() {
		t.Fatalf("expected executed but unsettled; executed=%v settled=%v", r.Executed(), r.Settled())
	}
}

func TestNew_MetadataAssigned(t *testing.T) {
	t.Parallel()

	a := Resolved(1)
	b := Resolved(1)

	if a.Id() == b.Id() {
		t.Fatalf("expected distinct ids")
	}
	if a.CreatedAt().IsZero() {
		t.Fatalf("expected a creation timestamp")
	}
	if a.Executed() || a.Settled() {
		t.Fatalf("new result must be neither executed nor settled")
	}
}
