package pipeline

import "github.com/UWCubeSat/found/internal/found"

// ModifyingPipeline threads a single resource through an ordered chain of
// ModifyingStage[T]s, each mutating it in place. Because every stage shares
// the same type T, the chain does not need SequentialPipeline's
// type-changing builder trick: AddStage just appends.
type ModifyingPipeline[T any] struct {
	stages []ModifyingStage[T]
	ready  bool
}

// NewModifyingPipeline starts an empty chain.
func NewModifyingPipeline[T any]() *ModifyingPipeline[T] {
	return &ModifyingPipeline[T]{}
}

// AddStage appends stage to the chain. It fails with PipelineAlreadyReady if
// the chain was already completed.
func (p *ModifyingPipeline[T]) AddStage(stage ModifyingStage[T]) (*ModifyingPipeline[T], error) {
	if p.ready {
		return nil, found.New(found.PipelineAlreadyReady, "AddStage called after Complete")
	}
	p.stages = append(p.stages, stage)
	return p, nil
}

// Complete seals the chain against further AddStage calls.
func (p *ModifyingPipeline[T]) Complete() (*ModifyingPipeline[T], error) {
	if p.ready {
		return nil, found.New(found.PipelineAlreadyReady, "Complete called after Complete")
	}
	p.ready = true
	return p, nil
}

// Run calls every stage's Run on resource, in registration order. It fails with PipelineNotReady if Complete has not
// been called.
func (p *ModifyingPipeline[T]) Run(resource *T) error {
	if !p.ready {
		return found.New(found.PipelineNotReady, "Run called before Complete")
	}
	for _, s := range p.stages {
		s.Run(resource)
	}
	return nil
}

// AsModifyingStage adapts a completed ModifyingPipeline into a
// ModifyingStage, so it can be nested inside an outer ModifyingPipeline (or
// wrapped via NewFunctionStage to sit inside a SequentialPipeline). A direct
// method-set match isn't possible here: the ModifyingStage contract's Run
// takes no error, while the pipeline's own Run surfaces PipelineNotReady to
// its caller, so nesting goes through this explicit adapter rather than
// implicit interface satisfaction.
func (p *ModifyingPipeline[T]) AsModifyingStage() ModifyingStage[T] {
	return NewFunctionModifyingStage(func(resource *T) {
		_ = p.Run(resource)
	})
}
