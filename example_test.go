package anew_test

import (
	"context"
	"fmt"
	"time"

	"andy.dev/anew"
)

var fetchTries = 0

func fetchValue() (string, error) {
	fetchTries++
	if fetchTries < 3 {
		return "", fmt.Errorf("not yet")
	}
	return "payload", nil
}

func ExampleRetrier_Run() {
	res := anew.New[string](5).Run(func(a *anew.Attempt[string]) anew.Result[string] {
		val, err := fetchValue()
		if err != nil {
			fmt.Printf("%s failed: %v\n", a, err)
			return a.Retry()
		}
		return a.Ok(val)
	})

	fmt.Println("got:", res.Unwrap())
	// Output:
	// try 1/5 failed: not yet
	// try 2/5 failed: not yet
	// got: payload
}

func ExampleRetrier_OnFault() {
	r := anew.New[int](4).
		Fallback("no luck").
		OnFault(func(f *anew.Fault[int]) anew.Result[int] {
			if f.Completed < 2 {
				fmt.Printf("suppressing %q after %d completed tries\n", f.Cause, f.Completed)
				return f.Retry()
			}
			return f.Stop(fmt.Sprintf("fatal: %v", f.Cause))
		})

	res := r.Run(func(a *anew.Attempt[int]) anew.Result[int] {
		panic("kaboom")
	})

	fmt.Println(res)
	// Output:
	// suppressing "kaboom" after 0 completed tries
	// suppressing "kaboom" after 1 completed tries
	// Err(fatal: kaboom)
}

func ExampleRetrier_Fallback() {
	res := anew.New[int](3).
		Fallback("all tries used").
		Run(func(a *anew.Attempt[int]) anew.Result[int] {
			return a.Retry()
		})

	if res.IsErr() {
		fmt.Println(res.UnwrapErr())
	}
	// Output:
	// all tries used
}

func ExamplePacer_Run() {
	p := anew.NewPacer[string](3, 10*time.Millisecond)

	res := p.Run(context.Background(), func(a *anew.PacedAttempt[string]) anew.Result[string] {
		if a.Number < 3 {
			return a.Retry()
		}
		return a.Ok(fmt.Sprintf("done on %s", a))
	})

	fmt.Println(res.Unwrap())
	// Output:
	// done on try 3/3
}

func ExampleNewFromConfig() {
	cfg := anew.Config{Attempts: 2}

	res := anew.NewFromConfig[int](cfg).Run(func(a *anew.Attempt[int]) anew.Result[int] {
		fmt.Println(a)
		return a.Retry()
	})

	fmt.Println(res)
	// Output:
	// try 1/2
	// try 2/2
	// Err(<nil>)
}
