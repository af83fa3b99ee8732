package slidemenu

import "time"

// Easing maps normalized progress in [0,1] to eased progress in [0,1].
type Easing func(t float64) float64

// Decelerate starts fast and slows towards the end: 1-(1-t)^2.
func Decelerate(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	r := 1 - t
	return 1 - r*r
}

// Job describes a single interpolation from Start to End.
type Job struct {
	Start    float64
	End      float64
	Duration time.Duration
}

type activeJob struct {
	Job
	id      int
	started time.Time
}

// Animator drives at most one Job at a time. It does not own a timer:
// the host calls Tick with the job id on every frame it schedules.
type Animator struct {
	ease       Easing
	seq        int
	active     *activeJob
	onUpdate   func(value float64)
	onComplete func(job Job)
}

// NewAnimator creates an animator. onUpdate receives every interpolated
// value; onComplete fires once per job that reaches its end uncancelled.
func NewAnimator(ease Easing, onUpdate func(float64), onComplete func(Job)) *Animator {
	if ease == nil {
		ease = Decelerate
	}
	return &Animator{
		ease:       ease,
		onUpdate:   onUpdate,
		onComplete: onComplete,
	}
}

// Start cancels any running job and begins job at now. It returns the id
// the host must pass back to Tick.
func (a *Animator) Start(job Job, now time.Time) int {
	a.Cancel()
	a.seq++
	a.active = &activeJob{Job: job, id: a.seq, started: now}
	return a.seq
}

// Cancel stops the running job without firing its completion.
// It reports whether a job was running.
func (a *Animator) Cancel() bool {
	if a.active == nil {
		return false
	}
	a.active = nil
	return true
}

// Running reports whether a job is in flight.
func (a *Animator) Running() bool {
	return a.active != nil
}

// ActiveID returns the id of the running job, or 0.
func (a *Animator) ActiveID() int {
	if a.active == nil {
		return 0
	}
	return a.active.id
}

// Value computes the interpolated value of job after elapsed.
func (a *Animator) Value(job Job, elapsed time.Duration) float64 {
	if job.Duration <= 0 || elapsed >= job.Duration {
		return job.End
	}
	progress := float64(elapsed) / float64(job.Duration)
	return job.Start + (job.End-job.Start)*a.ease(progress)
}

// Tick advances the job with the given id to now. Ticks for a cancelled or
// superseded job are ignored. It returns true while the job still needs
// frames.
func (a *Animator) Tick(id int, now time.Time) bool {
	job := a.active
	if job == nil || job.id != id {
		return false
	}

	elapsed := now.Sub(job.started)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed < job.Duration {
		if a.onUpdate != nil {
			a.onUpdate(a.Value(job.Job, elapsed))
		}
		return true
	}

	a.active = nil
	if a.onUpdate != nil {
		a.onUpdate(job.End)
	}
	if a.onComplete != nil {
		a.onComplete(job.Job)
	}
	return false
}
