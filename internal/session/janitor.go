package session

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Janitor prunes expired sessions from a Store on a fixed schedule.
type Janitor struct {
	store Store
	cron  *cron.Cron
}

// NewJanitor creates a janitor that prunes the given store. spec is a cron
// expression such as "@every 1h".
func NewJanitor(store Store, spec string) (*Janitor, error) {
	j := &Janitor{
		store: store,
		cron:  cron.New(),
	}
	if _, err := j.cron.AddFunc(spec, j.prune); err != nil {
		return nil, err
	}
	return j, nil
}

// Run starts the prune schedule in the background.
func (j *Janitor) Run() {
	log.Info().Msg("Starting session janitor")
	j.cron.Start()
}

// Stop halts the schedule and waits for a running prune to finish.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
	log.Info().Msg("Session janitor stopped")
}

func (j *Janitor) prune() {
	if n := j.store.Prune(); n > 0 {
		log.Info().Int("pruned", n).Msg("Pruned expired sessions")
	}
}
