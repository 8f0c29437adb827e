package network

import "errors"

// Sentinel errors for node and network operations. Contextual detail is
// attached by wrapping (fmt.Errorf with %w); match with errors.Is.
var (
	// ErrShapeMismatch indicates supplied shape metadata disagrees with the
	// tensor's actual shape, or a tensor's shape is incompatible with its
	// lattice position.
	ErrShapeMismatch = errors.New("network: supplied shape does not match tensor shape")
	// ErrInvalidOperand indicates a contraction or construction operand is
	// unusable: a nil tensor, a rank-0 tensor, or mismatched operand dtypes.
	ErrInvalidOperand = errors.New("network: invalid operand")
	// ErrInvalidAxisCount indicates a self-contraction was given other than
	// exactly two axis indices, or an axis index is not a valid position.
	ErrInvalidAxisCount = errors.New("network: invalid axis count or axis index")
	// ErrAxisMismatch indicates paired contraction axes do not have equal
	// dimensions, or the two axis lists have different lengths.
	ErrAxisMismatch = errors.New("network: paired axes have unequal dimensions")
	// ErrDimensionConflict indicates two bonded nodes disagree on the shared
	// axis's dimension at network construction.
	ErrDimensionConflict = errors.New("network: bonded nodes disagree on shared axis dimension")
	// ErrDisconnectedNetwork indicates a full reduction was requested but the
	// bond graph has more than one connected component.
	ErrDisconnectedNetwork = errors.New("network: bond graph is not connected")
	// ErrDuplicateNode indicates two nodes in one network share a name.
	ErrDuplicateNode = errors.New("network: duplicate node name")
	// ErrUnknownNode indicates a name does not refer to any node in the
	// network.
	ErrUnknownNode = errors.New("network: unknown node name")
)
