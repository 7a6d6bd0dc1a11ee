package heartbeat

import (
	"context"
	"time"

	"pedsignal-go/bus"
	"pedsignal-go/types"
	"pedsignal-go/x/logx"
)

var (
	topicMode       = bus.T("crossing", "mode")
	topicTaskStates = bus.T("crossing", "task", "+", "state")
)

var log = logx.New("heartbeat")

// Beat is one heartbeat report.
type Beat struct {
	Mode        types.Mode
	Transitions uint32
	Running     int // tasks currently running
	Seen        bool
}

type Service struct {
	Interval time.Duration
	// OnBeat, if set, is called with each report after it is logged.
	OnBeat func(Beat)
}

func NewService(interval time.Duration) *Service {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Service{Interval: interval}
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	modeSub := conn.Subscribe(topicMode)
	defer conn.Unsubscribe(modeSub)
	taskSub := conn.Subscribe(topicTaskStates)
	defer conn.Unsubscribe(taskSub)

	tick := time.NewTicker(s.Interval)
	defer tick.Stop()

	var beat Beat
	running := map[string]bool{}

	// loop until context is cancelled, report on each tick
	for {
		select {
		case <-ctx.Done():
			log.Info("heartbeat service stopping")
			return
		case msg := <-modeSub.Channel():
			if st, ok := msg.Payload.(types.ModeState); ok {
				beat.Mode, beat.Transitions, beat.Seen = st.Mode, st.Transitions, true
			}
		case msg := <-taskSub.Channel():
			if st, ok := msg.Payload.(types.TaskState); ok {
				running[st.Task] = st.State == types.TaskRunning
			}
		case <-tick.C:
			beat.Running = 0
			for _, r := range running {
				if r {
					beat.Running++
				}
			}
			if !beat.Seen {
				log.Info("heartbeat", "mode", "starting")
			} else {
				log.Info("heartbeat", "mode", beat.Mode.String(), "transitions", beat.Transitions, "running", beat.Running)
			}
			if s.OnBeat != nil {
				s.OnBeat(beat)
			}
		}
	}
}

// Start the heartbeat service.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}
