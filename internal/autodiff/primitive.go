package autodiff

// Transform maps an upstream gradient flowing into a call's result to the
// local gradient propagated to one of the call's arguments. Each backward
// edge carries exactly one Transform, built once at recording time.
type Transform func(upstream Value) Value

// GradientMaker builds the Transform for one argument position. It is
// called during interception with the wrapped result and the original
// (possibly wrapped) arguments of the call; the closure it returns is
// invoked later, during the backward pass, with the accumulated upstream
// gradient.
//
// Makers receive wrapped values on purpose: any arithmetic the returned
// Transform performs goes back through interception, so gradients of
// gradients record on whatever outer tapes are still open.
type GradientMaker func(result Value, args ...Value) Transform

// GradientMakerTemplate is a GradientMaker parameterized by argument
// position, for registering one formula across several positions at once.
type GradientMakerTemplate func(argnum int, result Value, args ...Value) Transform

// Primitive wraps one differentiable function for call interception.
// It holds the underlying raw function, a table of gradient makers keyed
// by 1-based argument position, and the set of positions known a priori to
// contribute no gradient.
//
// Registration is additive only: defining a maker for one position never
// disturbs the others.
type Primitive struct {
	name     string
	fn       func(args ...float64) float64
	makers   map[int]GradientMaker
	zeroGrad map[int]struct{}
}

// NewPrimitive wraps a plain function for interception. The name appears
// in missing-gradient failures.
func NewPrimitive(name string, fn func(args ...float64) float64) *Primitive {
	return &Primitive{
		name:     name,
		fn:       fn,
		makers:   make(map[int]GradientMaker),
		zeroGrad: make(map[int]struct{}),
	}
}

// Name returns the primitive's registered name.
func (p *Primitive) Name() string {
	return p.name
}

// DefineGradient registers the gradient maker for one argument position.
// Positions are 1-based.
func (p *Primitive) DefineGradient(maker GradientMaker, argnum int) {
	p.makers[argnum] = maker
}

// DefineGradients registers the template, partially applied per position,
// for each of the given 1-based positions.
func (p *Primitive) DefineGradients(tmpl GradientMakerTemplate, argnums ...int) {
	for _, argnum := range argnums {
		argnum := argnum
		p.makers[argnum] = func(result Value, args ...Value) Transform {
			return tmpl(argnum, result, args...)
		}
	}
}

// MarkZeroGradient declares 1-based argument positions that contribute no
// gradient. Node arguments in those positions are unwrapped but skipped
// during recording.
func (p *Primitive) MarkZeroGradient(argnums ...int) {
	for _, argnum := range argnums {
		p.zeroGrad[argnum] = struct{}{}
	}
}

// maker looks up the gradient maker for a 1-based position. The failure is
// a *MissingGradientError so callers can match it apart from every other
// error.
func (p *Primitive) maker(argnum int) (GradientMaker, error) {
	if m, ok := p.makers[argnum]; ok {
		return m, nil
	}
	return nil, &MissingGradientError{
		Primitive: p.name,
		Argnum:    argnum,
		partial:   len(p.makers) > 0,
	}
}
