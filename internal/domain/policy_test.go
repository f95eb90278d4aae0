package domain

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()

	if p.BatchSize != 1000 {
		t.Errorf("BatchSize = %v, want 1000", p.BatchSize)
	}
	if p.MaxWait != 5*time.Second {
		t.Errorf("MaxWait = %v, want 5s", p.MaxWait)
	}
	if p.Limited {
		t.Error("default policy should not be limited")
	}
}

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		wantErr bool
	}{
		{
			name:   "valid defaults",
			policy: DefaultPolicy(),
		},
		{
			name:   "valid limited",
			policy: Policy{BatchSize: 10, MaxWait: time.Second, Limit: 7, Limited: true},
		},
		{
			name:   "limit zero is valid",
			policy: Policy{BatchSize: 10, MaxWait: time.Second, Limit: 0, Limited: true},
		},
		{
			name:   "zero wait is valid",
			policy: Policy{BatchSize: 10, MaxWait: 0},
		},
		{
			name:    "zero batch size",
			policy:  Policy{BatchSize: 0, MaxWait: time.Second},
			wantErr: true,
		},
		{
			name:    "negative batch size",
			policy:  Policy{BatchSize: -5, MaxWait: time.Second},
			wantErr: true,
		},
		{
			name:    "negative wait",
			policy:  Policy{BatchSize: 10, MaxWait: -time.Second},
			wantErr: true,
		},
		{
			name:    "negative limit",
			policy:  Policy{BatchSize: 10, MaxWait: time.Second, Limit: -1, Limited: true},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidPolicy) {
				t.Errorf("error = %v, want ErrInvalidPolicy", err)
			}
		})
	}
}

func TestPolicy_NextBatchSize(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		deleted int
		want    int
	}{
		{
			name:    "unlimited uses batch size",
			policy:  Policy{BatchSize: 1000},
			deleted: 999999,
			want:    1000,
		},
		{
			name:    "limit larger than batch",
			policy:  Policy{BatchSize: 1000, Limit: 2500, Limited: true},
			deleted: 0,
			want:    1000,
		},
		{
			name:    "remaining smaller than batch",
			policy:  Policy{BatchSize: 1000, Limit: 2500, Limited: true},
			deleted: 2000,
			want:    500,
		},
		{
			name:    "limit below batch from the start",
			policy:  Policy{BatchSize: 1000, Limit: 7, Limited: true},
			deleted: 0,
			want:    7,
		},
		{
			name:    "limit spent",
			policy:  Policy{BatchSize: 1000, Limit: 7, Limited: true},
			deleted: 7,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.NextBatchSize(tt.deleted); got != tt.want {
				t.Errorf("NextBatchSize(%d) = %v, want %v", tt.deleted, got, tt.want)
			}
		})
	}
}

func TestPolicy_EffectiveFor(t *testing.T) {
	limited := Policy{BatchSize: 100, MaxWait: time.Second, Limit: 3, Limited: true}

	dlq := limited.EffectiveFor(QueueDeadLetter)
	if dlq.Limited || dlq.Limit != 0 {
		t.Errorf("EffectiveFor(QueueDeadLetter) = %+v, want limit cleared", dlq)
	}
	if dlq.BatchSize != 100 || dlq.MaxWait != time.Second {
		t.Errorf("EffectiveFor(QueueDeadLetter) altered batch bounds: %+v", dlq)
	}

	active := limited.EffectiveFor(QueueActive)
	if !active.Limited || active.Limit != 3 {
		t.Errorf("EffectiveFor(QueueActive) = %+v, want limit kept", active)
	}
}
