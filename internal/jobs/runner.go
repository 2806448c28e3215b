package jobs

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	cron "github.com/robfig/cron"
	"github.com/sirupsen/logrus"
)

// Task is a named unit of background work with a cron schedule.
type Task interface {
	Name() string
	Schedule() string
	Run()
}

// Scheduler runs tasks on their cron schedules. A task still running when
// its schedule fires again is skipped, not queued.
type Scheduler struct {
	cron    *cron.Cron
	tasks   []Task
	running mapset.Set[string]
	mu      sync.Mutex
}

func NewScheduler(tasks []Task) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		tasks:   tasks,
		running: mapset.NewSet[string](),
	}
}

func (s *Scheduler) Start() {
	for _, task := range s.tasks {
		err := s.cron.AddFunc(task.Schedule(), func() {
			s.mu.Lock()
			if s.running.Contains(task.Name()) {
				s.mu.Unlock()
				logrus.Warnf("task %s is still running, skipping this tick", task.Name())
				return
			}
			s.running.Add(task.Name())
			s.mu.Unlock()

			defer func() {
				s.mu.Lock()
				defer s.mu.Unlock()
				s.running.Remove(task.Name())
			}()

			task.Run()
		})

		if err != nil {
			logrus.Errorf("failed to schedule task %s: %v", task.Name(), err)
			panic(err)
		}
	}

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	logrus.Info("stopping all tasks")
	s.cron.Stop()
}
