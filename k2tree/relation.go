package k2tree

// Relation is the query vocabulary that both Tree[E] and BoolTree satisfy:
// point lookup, row-successor / column-predecessor enumeration, rectangular
// range enumeration, containment, cardinality, first-successor, a single
// mutation (SetNull), cloning, and printing. It has no independent logic of
// its own; every method here is implemented once, on the concrete types.
type Relation[E any] interface {
	K() int
	H() int
	NPrime() int
	Null() E

	IsNotNull(i, j int) (bool, error)
	GetElement(i, j int) (E, error)

	GetSuccessorPositions(i int) ([]int, error)
	GetSuccessorElements(i int) ([]E, error)
	GetSuccessorValuedPositions(i int) ([]ValuedPosition[E], error)

	GetPredecessorPositions(j int) ([]int, error)
	GetPredecessorElements(j int) ([]E, error)
	GetPredecessorValuedPositions(j int) ([]ValuedPosition[E], error)

	GetElementsInRange(i1, i2, j1, j2 int) ([]E, error)
	GetPositionsInRange(i1, i2, j1, j2 int) ([]Position, error)
	GetValuedPositionsInRange(i1, i2, j1, j2 int) ([]ValuedPosition[E], error)

	GetAllElements() []E
	GetAllPositions() []Position
	GetAllValuedPositions() []ValuedPosition[E]

	ContainsElement(i1, i2, j1, j2 int) (bool, error)
	CountElements() int
	GetFirstSuccessor(i int) (int, error)

	SetNull(i, j int) error
}

var _ Relation[int] = (*Tree[int])(nil)
var _ Relation[bool] = (*BoolTree)(nil)
