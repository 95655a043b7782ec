package main

import "github.com/tanema/gween"

// Action is what happens while a tween runs and after it finishes.
type Action struct {
	nexts    []func(an *Animator)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) OnChange(f func(float32)) *Action {
	a.onChange = f
	return a
}

func (a *Action) OnFinish(f func()) *Action {
	a.onFinish = append(a.onFinish, f)
	return a
}

// Then queues t to start when the current tween finishes.
func (a *Action) Then(t *gween.Tween) *Action {
	action := &Action{}
	a.nexts = append(a.nexts,
		func(an *Animator) {
			an.tweens[t] = action
		})
	return action
}

// Animator runs all active tweens.
type Animator struct {
	tweens map[*gween.Tween]*Action
}

func NewAnimator() *Animator {
	return &Animator{tweens: make(map[*gween.Tween]*Action)}
}

func (an *Animator) Start(t *gween.Tween) *Action {
	action := &Action{}
	an.tweens[t] = action
	return action
}

// Stop drops every running and queued tween.
func (an *Animator) Stop() {
	an.tweens = make(map[*gween.Tween]*Action)
}

// Update advances every tween by dt. Tweens queued with Then start on the
// next call.
func (an *Animator) Update(dt float32) {
	var queued []func(an *Animator)
	for t, a := range an.tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			queued = append(queued, a.nexts...)
			delete(an.tweens, t)
		}
	}
	for _, next := range queued {
		next(an)
	}
}
