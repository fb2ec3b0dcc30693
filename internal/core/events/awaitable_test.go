package events

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

// ============================================================================
// 记忆化测试
// ============================================================================

// TestAwaitable_SingleExecution 测试底层计算只执行一次
//
// 验证:
//   - 10 个并发等待方下副作用恰好发生一次
//   - 所有等待方观察到同一结果
func TestAwaitable_SingleExecution(t *testing.T) {
	var executions atomic.Int32

	a := NewAwaitable(func(_ context.Context) (int, error) {
		executions.Add(1)
		time.Sleep(10 * time.Millisecond)
		return 42, nil
	})

	if a.IsDone() {
		t.Error("IsDone() = true before first Await")
	}

	var g errgroup.Group
	for i := 0; i < 10; i++ {
		g.Go(func() error {
			v, err := a.Await(context.Background())
			if err != nil {
				return err
			}
			if v != 42 {
				return errors.New("unexpected value")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("Await failed: %v", err)
	}

	if n := executions.Load(); n != 1 {
		t.Errorf("computation executed %d times, want 1", n)
	}
	if !a.IsDone() {
		t.Error("IsDone() = false after completion")
	}
}

// TestAwaitable_ReplayAfterDone 测试完成后的重放
func TestAwaitable_ReplayAfterDone(t *testing.T) {
	var executions atomic.Int32

	a := NewAwaitable(func(_ context.Context) (string, error) {
		executions.Add(1)
		return "cached", nil
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		v, err := a.Await(ctx)
		if err != nil {
			t.Fatalf("Await #%d failed: %v", i, err)
		}
		if v != "cached" {
			t.Errorf("Await #%d = %q, want %q", i, v, "cached")
		}
	}

	if n := executions.Load(); n != 1 {
		t.Errorf("computation executed %d times, want 1", n)
	}
}

// TestAwaitable_FailureMemoized 测试失败同样被缓存
//
// 失败的计算不被重试，当前与后续等待方都观察到同一失败。
func TestAwaitable_FailureMemoized(t *testing.T) {
	sentinel := errors.New("handshake failed")
	var executions atomic.Int32

	a := NewAwaitable(func(_ context.Context) (int, error) {
		executions.Add(1)
		return 0, sentinel
	})

	ctx := context.Background()
	if _, err := a.Await(ctx); !errors.Is(err, sentinel) {
		t.Fatalf("first Await = %v, want sentinel", err)
	}
	if !a.IsDone() {
		t.Error("IsDone() = false after failure")
	}

	// 完成之后才开始等待的一方同样观察到该失败
	if _, err := a.Await(ctx); !errors.Is(err, sentinel) {
		t.Errorf("late Await = %v, want sentinel", err)
	}

	if n := executions.Load(); n != 1 {
		t.Errorf("failing computation executed %d times, want 1", n)
	}
}

// TestAwaitable_AwaiterCancelled 测试等待方取消
//
// ctx 取消只放弃本次等待；唯一一次执行继续运行，
// 其结果仍可被其他等待方取得。
func TestAwaitable_AwaiterCancelled(t *testing.T) {
	release := make(chan struct{})
	var executions atomic.Int32

	a := NewAwaitable(func(_ context.Context) (int, error) {
		executions.Add(1)
		<-release
		return 7, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	awaited := make(chan error, 1)
	go func() {
		_, err := a.Await(ctx)
		awaited <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-awaited:
		if err != context.Canceled {
			t.Errorf("cancelled Await = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("cancelled Await never returned")
	}

	close(release)

	v, err := a.Await(context.Background())
	if err != nil {
		t.Fatalf("second Await failed: %v", err)
	}
	if v != 7 {
		t.Errorf("second Await = %d, want 7", v)
	}
	if n := executions.Load(); n != 1 {
		t.Errorf("computation executed %d times, want 1", n)
	}
}
