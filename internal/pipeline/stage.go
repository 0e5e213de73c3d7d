// Package pipeline provides the typed dataflow framework that found's
// calibration, distance, and orbit pipelines are built on: a chain of
// stages with in-place product storage, a sequential composition, an
// in-place "modifying" variant, and recursive nesting (a pipeline is itself
// a Stage).
//
// A Stage's Run carries no error return, so an algorithm that hits a
// domain failure (coplanar limb rays, too few limb points) panics with a
// *found.Error; SequentialPipeline.Run recovers it at the top and reports
// it through its own error return. Any other panic propagates unchanged.
package pipeline

// Action is the minimal polymorphic operation: it runs using its stored
// input and writes into its stored output destination.
type Action interface {
	DoAction()
}

// Stage is an Action that also exposes the pure computation Run(I) -> O.
// DoAction invokes Run on the stage's stored resource and writes the result
// into the destination the builder wired at registration time.
type Stage[I, O any] interface {
	Action
	Run(input I) O
}

// FunctionStage is the common base for Stage implementations: it holds a
// resource slot and a pointer to a product destination, and its DoAction
// invokes the embedded Run and stores the result through that pointer.
//
// Concrete stages embed a FunctionStage built by NewFunctionStage from
// their own run function, and inherit Run from it; NewFunctionStage also
// builds an ad hoc Stage out of a plain function (used heavily in tests and
// for mocked pipeline stages).
type FunctionStage[I, O any] struct {
	resource I
	product  *O
	run      func(I) O
}

// NewFunctionStage builds a FunctionStage wrapping run.
func NewFunctionStage[I, O any](run func(I) O) *FunctionStage[I, O] {
	return &FunctionStage[I, O]{run: run}
}

// Run executes the stage's wrapped function.
func (f *FunctionStage[I, O]) Run(input I) O {
	return f.run(input)
}

// DoAction runs the stage against its stored resource and writes into its
// product destination.
func (f *FunctionStage[I, O]) DoAction() {
	*f.product = f.Run(f.resource)
}

// SetResource stores the input that DoAction will run against.
func (f *FunctionStage[I, O]) SetResource(resource I) {
	f.resource = resource
}

// Resource returns the stage's stored input.
func (f *FunctionStage[I, O]) Resource() I {
	return f.resource
}

// ResourcePtr returns the address of the stage's input slot, used by
// SequentialPipeline to wire one stage's product directly into the next
// stage's resource.
func (f *FunctionStage[I, O]) ResourcePtr() *I {
	return &f.resource
}

// SetProduct wires the destination DoAction writes its output into.
func (f *FunctionStage[I, O]) SetProduct(product *O) {
	f.product = product
}

// Product returns the stage's product destination.
func (f *FunctionStage[I, O]) Product() *O {
	return f.product
}

// ModifyingStage mutates its resource in place, used when a pipeline's
// input and output are the same type and copying would be wasteful.
type ModifyingStage[T any] interface {
	Action
	Run(resource *T)
}

// FunctionModifyingStage is the common base for ModifyingStage
// implementations built from a plain function.
type FunctionModifyingStage[T any] struct {
	resource *T
	run      func(*T)
}

// NewFunctionModifyingStage builds a FunctionModifyingStage wrapping run.
func NewFunctionModifyingStage[T any](run func(*T)) *FunctionModifyingStage[T] {
	return &FunctionModifyingStage[T]{run: run}
}

// Run executes the stage's wrapped function against resource.
func (f *FunctionModifyingStage[T]) Run(resource *T) {
	f.run(resource)
}

// DoAction runs the stage against its stored resource pointer.
func (f *FunctionModifyingStage[T]) DoAction() {
	f.Run(f.resource)
}

// SetResource stores the pointer that DoAction will mutate.
func (f *FunctionModifyingStage[T]) SetResource(resource *T) {
	f.resource = resource
}
