package rav1e

// PredictionMode selects how a block's pixels are predicted. The intra
// modes come first; ordinal comparisons below depend on that order.
type PredictionMode int

const (
	DcPred      PredictionMode = iota // average of above and left pixels
	VPred                             // vertical
	HPred                             // horizontal
	D45Pred                           // directional 45 deg
	D135Pred                          // directional 135 deg
	D117Pred                          // directional 117 deg
	D153Pred                          // directional 153 deg
	D207Pred                          // directional 207 deg
	D63Pred                           // directional 63 deg
	SmoothPred                        // combined horizontal and vertical interpolation
	SmoothVPred
	SmoothHPred
	PaethPred
	UvCflPred
	NearestMv
	Near0Mv
	Near1Mv
	Near2Mv
	GlobalMv
	NewMv
	// Compound reference modes.
	NearestNearestMv
	NearNearMv
	NearestNewMv
	NewNearestMv
	NearNewMv
	NewNearMv
	GlobalGlobalMv
	NewNewMv
)

// InterCompoundModes is the number of compound inter modes.
const InterCompoundModes = 1 + int(NewNewMv) - int(NearestNearestMv)

// Mode context table sizes for the surrounding entropy coder.
const (
	NewmvModeContexts    = 7
	GlobalmvModeContexts = 2
	RefmvModeContexts    = 6

	RefmvOffset     = 4
	GlobalmvOffset  = 3
	NewmvCtxMask    = (1 << GlobalmvOffset) - 1
	GlobalmvCtxMask = (1 << (RefmvOffset - GlobalmvOffset)) - 1
	RefmvCtxMask    = (1 << (8 - RefmvOffset)) - 1
)

// IsIntra reports whether the mode predicts from the current frame.
func (m PredictionMode) IsIntra() bool { return m < NearestMv }

// IsCfl reports whether the mode is chroma-from-luma.
func (m PredictionMode) IsCfl() bool { return m == UvCflPred }

// IsDirectional reports whether the mode is an angular intra mode.
func (m PredictionMode) IsDirectional() bool {
	return m >= VPred && m <= D63Pred
}

// InterIntraMode selects the intra component of combined inter-intra
// prediction.
type InterIntraMode int

const (
	IIDcPred InterIntraMode = iota
	IIVPred
	IIHPred
	IISmoothPred
	InterIntraModes
)

// CompoundType selects how two inter predictions are blended.
type CompoundType int

const (
	CompoundAverage CompoundType = iota
	CompoundWedge
	CompoundDiffwtd
	CompoundTypes
)

// MotionMode selects the motion model applied on top of translation.
type MotionMode int

const (
	SimpleTranslation MotionMode = iota
	ObmcCausal
	WarpedCausal
	MotionModes
)

// GlobalMvMode parameterizes the frame-global motion model.
type GlobalMvMode int

const (
	GlobalIdentity    GlobalMvMode = iota // identity transformation, 0-parameter
	GlobalTranslation                     // translational motion, 2-parameter
	GlobalRotzoom                         // rotation + zoom only, 4-parameter
	GlobalAffine                          // full affine, 6-parameter
)
