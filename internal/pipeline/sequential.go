package pipeline

import "github.com/UWCubeSat/found/internal/found"

// WireableStage is the contract a concrete stage must satisfy to be
// registered into a SequentialPipeline: besides the pure Run(I) -> O, the
// pipeline needs the address of the stage's resource slot (so a prior
// stage's product pointer can be wired directly into it, avoiding a copy)
// and a setter for where its own product should land.
type WireableStage[I, O any] interface {
	Action
	Run(I) O
	ResourcePtr() *I
	SetProduct(*O)
	SetResource(I)
}

// SequentialPipeline chains stages so the first stage's input type is I, the
// last stage's output type is O, and each intermediate stage's product
// pointer is wired directly into the next stage's resource slot.
//
// Go's generic methods cannot introduce new type parameters, so unlike the
// original "AddStage returns self" builder, growing the chain here is done
// with the free functions AddStage and Complete, each returning a new
// SequentialPipeline value typed for the chain built so far. A
// SequentialPipeline is itself a WireableStage, so it can be registered as a
// stage inside an outer pipeline.
type SequentialPipeline[I, O any] struct {
	actions      []Action
	setFirst     func(I)
	wireLastTo   func(dst *O)
	ready        bool
	resource     I
	product      *O
	finalStorage O
}

// NewSequential starts a chain with first as its only (so far) stage.
func NewSequential[I, O any](first WireableStage[I, O]) *SequentialPipeline[I, O] {
	return &SequentialPipeline[I, O]{
		actions:    []Action{first},
		setFirst:   first.SetResource,
		wireLastTo: first.SetProduct,
	}
}

// AddStage appends next to the chain, wiring the current last stage's
// product directly into next's resource slot. It fails with
// PipelineAlreadyReady if the chain was already completed.
func AddStage[I, Mid, O any](p *SequentialPipeline[I, Mid], next WireableStage[Mid, O]) (*SequentialPipeline[I, O], error) {
	if p.ready {
		return nil, found.New(found.PipelineAlreadyReady, "AddStage called after Complete")
	}
	p.wireLastTo(next.ResourcePtr())
	return &SequentialPipeline[I, O]{
		actions:    append(p.actions, next),
		setFirst:   p.setFirst,
		wireLastTo: next.SetProduct,
	}, nil
}

// Complete terminates the chain, wiring the current last stage's product
// into the pipeline's own final-product slot. It fails with
// PipelineAlreadyReady if called twice.
func Complete[I, O any](p *SequentialPipeline[I, O]) (*SequentialPipeline[I, O], error) {
	if p.ready {
		return nil, found.New(found.PipelineAlreadyReady, "Complete called after Complete")
	}
	p.wireLastTo(&p.finalStorage)
	p.ready = true
	p.product = &p.finalStorage
	return p, nil
}

// Run copies input into the first stage's resource, invokes every stage's
// DoAction in registration order, and returns the final product. It fails
// with PipelineNotReady if Complete has not been called.
func (p *SequentialPipeline[I, O]) Run(input I) (out O, err error) {
	if !p.ready {
		var zero O
		return zero, found.New(found.PipelineNotReady, "Run called before Complete")
	}
	defer func() {
		if r := recover(); r != nil {
			if fe, ok := r.(*found.Error); ok {
				err = fe
				return
			}
			panic(r)
		}
	}()
	p.setFirst(input)
	for _, a := range p.actions {
		a.DoAction()
	}
	return *p.product, nil
}

// ResourcePtr returns the address of the pipeline's own input slot, used
// when this pipeline is nested as a stage inside an outer pipeline.
func (p *SequentialPipeline[I, O]) ResourcePtr() *I {
	return &p.resource
}

// SetResource stores the input this pipeline will run against when invoked
// via DoAction (the nested-stage path).
func (p *SequentialPipeline[I, O]) SetResource(input I) {
	p.resource = input
}

// SetProduct rewires the chain's last stage to write directly into dst
// instead of the pipeline's own final-product slot. This is how an outer
// pipeline arranges for a nested pipeline to write straight into the outer
// stage's resource slot, with no intermediate copy.
func (p *SequentialPipeline[I, O]) SetProduct(dst *O) {
	p.wireLastTo(dst)
	p.product = dst
}

// DoAction runs the pipeline against its stored resource (set via
// SetResource) and writes into whatever destination SetProduct last wired
// (or the pipeline's own final-product slot, if never nested). It assumes
// the pipeline is already complete, which holds by construction: a pipeline
// is only registered into an outer pipeline after Complete has run.
func (p *SequentialPipeline[I, O]) DoAction() {
	p.setFirst(p.resource)
	for _, a := range p.actions {
		a.DoAction()
	}
}
