package crossing

import (
	"context"
	"sync/atomic"
	"time"

	"pedsignal-go/bus"
	"pedsignal-go/errcode"
	"pedsignal-go/services/hal"
	"pedsignal-go/types"

	"github.com/jonboulle/clockwork"
)

// request asks the task loop to run or park. ack is closed once the task
// has reached the requested state.
type request struct {
	run bool
	ack chan struct{}
}

// Task runs one step program on its own goroutine. It is created parked and
// only the mode switch moves it between parked and running.
//
// Requests are serviced only while the task holds between steps, so a task
// is never parked half way through a step's writes. A parked task keeps its
// program counter and the unexpired part of the current hold; resuming
// re-applies the current step and then finishes that hold.
type Task struct {
	name string
	set  types.Mode
	prog Program
	sig  hal.Signals
	clk  clockwork.Clock
	conn *bus.Connection
	tpc  bus.Topic

	ctrl     chan request
	done     chan struct{}
	started  atomic.Bool
	runnable atomic.Bool
	pc       atomic.Int32
}

// NewTask builds a parked task. conn may be nil.
func NewTask(name string, set types.Mode, prog Program, sig hal.Signals, clk clockwork.Clock, conn *bus.Connection) *Task {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	return &Task{
		name: name,
		set:  set,
		prog: prog,
		sig:  sig,
		clk:  clk,
		conn: conn,
		tpc:  bus.T("crossing", "task", name, "state"),
		ctrl: make(chan request),
		done: make(chan struct{}),
	}
}

func (t *Task) Name() string     { return t.name }
func (t *Task) Set() types.Mode  { return t.set }
func (t *Task) Program() Program { return t.prog }

// Runnable reports whether the task is currently running its program.
func (t *Task) Runnable() bool { return t.runnable.Load() }

// Step is the current program counter.
func (t *Task) Step() int { return int(t.pc.Load()) }

// Start launches the task loop, parked. It returns AlreadyStarted on a
// second call. The loop exits when ctx is cancelled.
func (t *Task) Start(ctx context.Context) error {
	if len(t.prog) == 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "task.start", Msg: t.name + ": empty program"}
	}
	if !t.started.CompareAndSwap(false, true) {
		return errcode.AlreadyStarted
	}
	t.publish(types.TaskParked)
	go t.loop(ctx)
	return nil
}

// Suspend parks the task and waits until it is parked.
func (t *Task) Suspend(ctx context.Context) error { return t.request(ctx, false) }

// Resume lets the task run and waits until its current step is applied.
func (t *Task) Resume(ctx context.Context) error { return t.request(ctx, true) }

func (t *Task) request(ctx context.Context, run bool) error {
	op := "task.suspend"
	if run {
		op = "task.resume"
	}
	r := request{run: run, ack: make(chan struct{})}
	select {
	case t.ctrl <- r:
	case <-ctx.Done():
		return &errcode.E{C: errcode.Stopped, Op: op, Msg: t.name, Err: ctx.Err()}
	case <-t.done:
		return &errcode.E{C: errcode.Stopped, Op: op, Msg: t.name}
	}
	select {
	case <-r.ack:
		return nil
	case <-t.done:
		// The loop closes ack before it exits when it honoured r.
		select {
		case <-r.ack:
			return nil
		default:
		}
		return &errcode.E{C: errcode.Stopped, Op: op, Msg: t.name}
	}
}

func (t *Task) loop(ctx context.Context) {
	defer close(t.done)

	var (
		tm        clockwork.Timer
		pc        int
		next      time.Time
		remaining = t.prog[0].Hold
	)
	arm := func(d time.Duration) {
		if tm == nil {
			tm = t.clk.NewTimer(d)
			return
		}
		resetTimer(tm, d)
	}

	for {
		// Parked: wait for a run request.
		for !t.runnable.Load() {
			select {
			case <-ctx.Done():
				return
			case r := <-t.ctrl:
				if ctx.Err() != nil {
					// Left unacked; the requester sees Stopped.
					return
				}
				if r.run {
					t.prog[pc].Do(t.sig)
					next = t.clk.Now().Add(remaining)
					arm(remaining)
					t.runnable.Store(true)
					t.publish(types.TaskRunning)
					log.Debug("task running", "task", t.name, "step", pc, "hold", remaining)
				}
				close(r.ack)
			}
		}

		// Running: hold until the deadline or a park request.
		select {
		case <-ctx.Done():
			stopTimer(tm)
			t.runnable.Store(false)
			return
		case <-tm.Chan():
			pc++
			if pc == len(t.prog) {
				pc = 0
			}
			t.pc.Store(int32(pc))
			st := &t.prog[pc]
			st.Do(t.sig)
			next = next.Add(st.Hold)
			resetTimer(tm, next.Sub(t.clk.Now()))
		case r := <-t.ctrl:
			if ctx.Err() != nil {
				stopTimer(tm)
				t.runnable.Store(false)
				return
			}
			if !r.run {
				remaining = next.Sub(t.clk.Now())
				if remaining < 0 {
					remaining = 0
				}
				stopTimer(tm)
				t.runnable.Store(false)
				t.publish(types.TaskParked)
				log.Debug("task parked", "task", t.name, "step", pc, "remaining", remaining)
			}
			close(r.ack)
		}
	}
}

func (t *Task) publish(state types.TaskRun) {
	if t.conn == nil {
		return
	}
	t.conn.Publish(t.conn.NewMessage(t.tpc, types.TaskState{
		Task:  t.name,
		Set:   t.set,
		State: state,
		Step:  int(t.pc.Load()),
		TSms:  t.clk.Now().UnixMilli(),
	}, true))
}
