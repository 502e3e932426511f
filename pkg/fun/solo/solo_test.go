package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/fun3/pkg/fun"
)

func TestSwitch_LeftIdentity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := func(_ context.Context, v int) fun.Result[string] {
		return fun.Success(strconv.Itoa(v * 2))
	}

	bound := Switch(ctx, Succeed(21), f)
	direct := f(ctx, 21)

	if !bound.IsSuccess() || bound.Result() != direct.Result() {
		t.Fatalf("expected Switch(Succeed(v), f) == f(v); got %q vs %q", bound.Result(), direct.Result())
	}
}

func TestSwitch_FailurePropagatesUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")

	called := false
	input := fun.Fail[int](err)
	out := Switch(ctx, input, func(_ context.Context, v int) fun.Result[string] {
		called = true
		return fun.Success("never")
	})

	if out.IsSuccess() || out.Err() != err {
		t.Fatalf("expected the original failure, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if out.Id() != input.Id() {
		t.Fatalf("expected failure identity to survive the type change")
	}
	if called {
		t.Fatalf("onSuccess must not run for a failure")
	}
}

func TestSwitch_Associativity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := func(_ context.Context, v int) fun.Result[int] { return fun.Success(v + 1) }
	g := func(_ context.Context, v int) fun.Result[int] { return fun.Success(v * 3) }

	left := Switch(ctx, Switch(ctx, Succeed(4), f), g)
	right := Switch(ctx, Succeed(4), func(c context.Context, v int) fun.Result[int] {
		return Switch(c, f(c, v), g)
	})

	if left.Result() != right.Result() {
		t.Fatalf("associativity broken: %d != %d", left.Result(), right.Result())
	}
}

func TestMap_SuccessAndFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(ctx, Succeed(5), func(_ context.Context, v int) string { return strconv.Itoa(v) })
	if !out.IsSuccess() || out.Result() != "5" {
		t.Fatalf("expected \"5\", got: %v, %q", out.IsSuccess(), out.Result())
	}

	err := errors.New("nope")
	out = Map(ctx, fun.Fail[int](err), func(_ context.Context, v int) string { return "x" })
	if out.IsSuccess() || out.Err() != err {
		t.Fatalf("expected failure to pass through, got: %v, %v", out.IsSuccess(), out.Err())
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	nonEmpty := func(_ context.Context, s string) (bool, string) {
		if s == "" {
			return false, "empty"
		}
		return true, ""
	}

	if out := Validate(ctx, "ok", nonEmpty); !out.IsSuccess() || out.Result() != "ok" {
		t.Fatalf("expected success with the input, got: %v", out.Err())
	}
	if out := Validate(ctx, "", nonEmpty); out.IsSuccess() || out.Err().Error() != "empty" {
		t.Fatalf("expected 'empty' failure, got: %v", out.Err())
	}
}

func TestAndValidate_SkipsOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	input := fun.Fail[string](errors.New("upstream"))
	out := AndValidate(ctx, input, func(_ context.Context, s string) (bool, string) {
		called = true
		return true, ""
	})

	if out.IsSuccess() || called {
		t.Fatalf("expected upstream failure without validation; called=%v", called)
	}
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parse := func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) }

	if out := Try(ctx, Succeed("17"), parse); !out.IsSuccess() || out.Result() != 17 {
		t.Fatalf("expected 17, got: %v, %v", out.Result(), out.Err())
	}
	if out := Try(ctx, Succeed("bad"), parse); out.IsSuccess() {
		t.Fatalf("expected parse failure")
	}

	err := errors.New("upstream")
	if out := Try(ctx, fun.Fail[string](err), parse); out.IsSuccess() || out.Err() != err {
		t.Fatalf("expected upstream failure, got: %v", out.Err())
	}
}

func TestTeeAndDoubleTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	out := Tee(ctx, Succeed(1), func(_ context.Context, r fun.Result[int]) { seen = r.Result() })
	if !out.IsSuccess() || seen != 1 {
		t.Fatalf("expected side effect with 1, got %d", seen)
	}

	sCalled, fCalled := false, false
	DoubleTee(ctx, fun.Fail[int](errors.New("x")),
		func(_ context.Context, v int) { sCalled = true },
		func(_ context.Context, err error) { fCalled = true })
	if sCalled || !fCalled {
		t.Fatalf("expected failure side-effect only; sCalled=%v fCalled=%v", sCalled, fCalled)
	}
}

func TestTeeIf(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fired := false
	TeeIf(ctx, Succeed(10),
		func(_ context.Context, r fun.Result[int]) bool { return r.Result() > 5 },
		func(_ context.Context, r fun.Result[int]) { fired = true })
	if !fired {
		t.Fatalf("expected conditional side effect to fire")
	}

	fired = false
	TeeIf(ctx, Succeed(1),
		func(_ context.Context, r fun.Result[int]) bool { return r.Result() > 5 },
		func(_ context.Context, r fun.Result[int]) { fired = true })
	if fired {
		t.Fatalf("expected condition to suppress the side effect")
	}
}

func TestDoubleMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	errSeen := false
	out := DoubleMap(ctx, Succeed(2),
		func(_ context.Context, v int) string { return strconv.Itoa(v) },
		func(_ context.Context, err error) string { errSeen = true; return "err" })
	if !out.IsSuccess() || out.Result() != "2" || errSeen {
		t.Fatalf("expected \"2\" without error hook, got %q, errSeen=%v", out.Result(), errSeen)
	}

	out = DoubleMap(ctx, fun.Fail[int](errors.New("bad")),
		func(_ context.Context, v int) string { return "v" },
		func(_ context.Context, err error) string { errSeen = true; return "err" })
	if out.IsSuccess() || !errSeen {
		t.Fatalf("expected failure with error hook fired")
	}
}

func TestFailOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FailOnError(ctx, Succeed(3), func(_ context.Context, v int) error {
		if v > 2 {
			return errors.New("too big")
		}
		return nil
	})
	if out.IsSuccess() || out.Err().Error() != "too big" {
		t.Fatalf("expected 'too big' failure, got %v", out.Err())
	}

	out = FailOnError(ctx, Succeed(1), func(_ context.Context, v int) error { return nil })
	if !out.IsSuccess() || out.Result() != 1 {
		t.Fatalf("expected success with 1")
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := Match(ctx, Succeed(3),
		func(_ context.Context, v int) int { return v + 100 },
		func(_ context.Context, err error) int { return -1 })
	if s != 103 {
		t.Fatalf("expected 103, got %d", s)
	}

	f := Match(ctx, fun.Fail[int](errors.New("x")),
		func(_ context.Context, v int) int { return v },
		func(_ context.Context, err error) int { return -1 })
	if f != -1 {
		t.Fatalf("expected -1 for failure, got %d", f)
	}
}
