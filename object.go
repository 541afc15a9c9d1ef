package easel

// Drawer produces an Object's segment geometry on demand. The engine calls
// Draw at most once per Object per frame, and only for Objects marked dirty
// by Redraw (or by a structural change on an ancestor). Implementations
// rebuild the Object's Segments from model state; they must not assume any
// particular call frequency, so geometry belongs here and nowhere else.
type Drawer interface {
	Draw(o *Object, tr *Transformer)
}

// DrawFunc adapts an ordinary function to the Drawer interface.
type DrawFunc func(o *Object, tr *Transformer)

// Draw calls f(o, tr).
func (f DrawFunc) Draw(o *Object, tr *Transformer) { f(o, tr) }

// objectIDCounter is a plain counter (no atomic — the scene graph is
// single-threaded).
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// Object is a node in the scene tree. It groups Segments (its drawable
// geometry) and child Objects (painted after it, back to front), carries a
// Style that its contents inherit from, and controls visibility and
// hit-testing for everything below it.
type Object struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Object
	children []*Object
	segments []*Segment
	scene    *Scene

	// DeviceRelative marks the subtree's segment geometry as authored in
	// device pixels rather than world units, bypassing the Transformer.
	// Overlays and interaction feedback use this. Set it before the object
	// first draws.
	DeviceRelative bool

	// Pickable excludes the object's segments from hit-testing when false,
	// independent of visibility. Feedback overlays turn this off so they
	// never occlude the content under them.
	Pickable bool

	// Drawer rebuilds the object's segments when it is dirty. Objects
	// without a Drawer keep whatever segments were attached by hand.
	Drawer Drawer

	// UserData is an arbitrary caller-owned value.
	UserData any

	style      *Style
	visibility Visibility

	geometryDirty bool
	removing      bool
}

// NewObject creates a detached Object with an empty Style, fully visible.
func NewObject(name string) *Object {
	return &Object{
		ID:            nextObjectID(),
		Name:          name,
		Pickable:      true,
		style:         NewStyle(),
		visibility:    VisibleAll,
		geometryDirty: true,
	}
}

// --- Tree manipulation ---

// AddChild appends child to this object's children, making it the new
// front-most sibling. If child already has a parent it is detached from that
// parent first, so re-parenting is a single atomic call.
// Panics if child is nil or child is an ancestor of this object (cycle).
func (o *Object) AddChild(child *Object) {
	o.prepareAdd(child)
	child.Parent = o
	o.children = append(o.children, child)
	o.afterAdd(child)
}

// AddChildAt inserts child at the given index among the children, 0 being
// the back-most. Same re-parenting and cycle-check behavior as AddChild.
// Panics if index is outside [0, NumChildren].
func (o *Object) AddChildAt(child *Object, index int) {
	o.prepareAdd(child)
	if index < 0 || index > len(o.children) {
		panic("easel: child index out of range")
	}
	child.Parent = o
	o.children = append(o.children, nil)
	copy(o.children[index+1:], o.children[index:])
	o.children[index] = child
	o.afterAdd(child)
}

// AddChildSorted inserts child at the position given by less, scanning from
// the end so ties land after their equals and keep insertion order. The
// existing children must already be ordered by the same function.
func (o *Object) AddChildSorted(child *Object, less func(a, b *Object) bool) {
	o.prepareAdd(child)
	if less == nil {
		panic("easel: AddChildSorted requires an ordering function")
	}
	i := len(o.children)
	for i > 0 && less(child, o.children[i-1]) {
		i--
	}
	child.Parent = o
	o.children = append(o.children, nil)
	copy(o.children[i+1:], o.children[i:])
	o.children[i] = child
	o.afterAdd(child)
}

// prepareAdd runs the shared validation and detach half of the Add variants.
func (o *Object) prepareAdd(child *Object) {
	if child == nil {
		panic("easel: cannot add nil child")
	}
	if o.removing || child.removing {
		panic("easel: cannot add while a removal is in progress")
	}
	if isAncestor(child, o) {
		panic("easel: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
}

// afterAdd runs the shared bookkeeping half of the Add variants.
func (o *Object) afterAdd(child *Object) {
	child.setSceneRecursive(o.scene)
	markSubtreeGeometryDirty(child)
	o.invalidateScene()
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(o)
	}
}

// RemoveChild detaches child from this object without touching the child's
// own contents. Panics if child.Parent != o.
func (o *Object) RemoveChild(child *Object) {
	if child == nil || child.Parent != o {
		panic("easel: child's parent is not this object")
	}
	o.removeChildByPtr(child)
	child.Parent = nil
	child.setSceneRecursive(nil)
	o.invalidateScene()
}

// RemoveChildAt detaches and returns the child at the given index.
// Panics if index is outside [0, NumChildren).
func (o *Object) RemoveChildAt(index int) *Object {
	if index < 0 || index >= len(o.children) {
		panic("easel: child index out of range")
	}
	child := o.children[index]
	copy(o.children[index:], o.children[index+1:])
	o.children[len(o.children)-1] = nil
	o.children = o.children[:len(o.children)-1]
	child.Parent = nil
	child.setSceneRecursive(nil)
	o.invalidateScene()
	return child
}

// RemoveChildren detaches all children. The children keep their own contents.
func (o *Object) RemoveChildren() {
	scene := o.scene
	for _, child := range o.children {
		child.Parent = nil
		child.setSceneRecursive(nil)
	}
	o.children = o.children[:0]
	if scene != nil {
		scene.noteStructureChanged()
	}
}

// Remove detaches this object from its parent and cascades: every owned
// Segment is detached (releasing its annotation and marker), and every child
// is removed recursively the same way. Afterwards the object is empty and
// detached; it may be repopulated and added again.
func (o *Object) Remove() {
	if o.Parent != nil {
		o.Parent.RemoveChild(o)
	} else {
		o.setSceneRecursive(nil)
	}
	o.removeContents()
}

func (o *Object) removeContents() {
	o.removing = true
	for _, seg := range o.segments {
		seg.owner = nil
		seg.detachContents()
	}
	o.segments = nil
	for _, child := range o.children {
		child.Parent = nil
		child.removeContents()
	}
	o.children = nil
	o.removing = false
}

// Children returns the child list ordered back to front. The returned slice
// MUST NOT be mutated by the caller.
func (o *Object) Children() []*Object {
	return o.children
}

// NumChildren returns the number of children.
func (o *Object) NumChildren() int {
	return len(o.children)
}

// ChildAt returns the child at the given index.
func (o *Object) ChildAt(index int) *Object {
	return o.children[index]
}

// --- Z-order ---

// RepositionChild moves child to a new index among its siblings without
// detaching it. Out-of-range indices are silently ignored: reposition is the
// one lenient tree operation, because callers commonly compute the target
// from sibling counts that may be stale by the time the call lands.
// Panics if child.Parent != o.
func (o *Object) RepositionChild(child *Object, index int) {
	if child == nil || child.Parent != o {
		panic("easel: child's parent is not this object")
	}
	nc := len(o.children)
	if index < 0 || index > nc {
		return
	}
	if index == nc {
		// Front() reports one past the last sibling; the front-most slot
		// after the move is nc-1.
		index = nc - 1
	}
	oldIndex := -1
	for i, c := range o.children {
		if c == child {
			oldIndex = i
			break
		}
	}
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(o.children[oldIndex:], o.children[oldIndex+1:index+1])
	} else {
		copy(o.children[index+1:], o.children[index:oldIndex])
	}
	o.children[index] = child
	o.invalidateScene()
}

// Front returns the index one past the current front-most sibling, the value
// to pass to RepositionChild to bring this object to the front.
func (o *Object) Front() int {
	if o.Parent == nil {
		return 0
	}
	return len(o.Parent.children)
}

// Back returns the back-most sibling index, always 0.
func (o *Object) Back() int {
	return 0
}

// Forward returns this object's sibling index plus one, for moving it one
// step toward the front.
func (o *Object) Forward() int {
	return o.siblingIndex() + 1
}

// Backward returns this object's sibling index minus one, clamped to 0, for
// moving it one step toward the back.
func (o *Object) Backward() int {
	i := o.siblingIndex() - 1
	if i < 0 {
		return 0
	}
	return i
}

func (o *Object) siblingIndex() int {
	if o.Parent == nil {
		return 0
	}
	for i, c := range o.Parent.children {
		if c == o {
			return i
		}
	}
	return 0
}

// --- Segments ---

// AddSegment appends seg to this object's drawable geometry. If seg already
// has an owner it is detached from that owner first.
// Panics if seg is nil or the object is mid-removal.
func (o *Object) AddSegment(seg *Segment) {
	if seg == nil {
		panic("easel: cannot add nil segment")
	}
	if o.removing {
		panic("easel: cannot add while a removal is in progress")
	}
	if seg.owner != nil {
		seg.owner.removeSegmentByPtr(seg)
	}
	seg.owner = o
	o.segments = append(o.segments, seg)
	o.invalidateScene()
}

// RemoveSegment detaches seg from this object, releasing its annotation and
// marker. Panics if seg's owner is not this object.
func (o *Object) RemoveSegment(seg *Segment) {
	if seg == nil || seg.owner != o {
		panic("easel: segment's owner is not this object")
	}
	o.removeSegmentByPtr(seg)
	seg.owner = nil
	seg.detachContents()
	o.invalidateScene()
}

// RemoveSegments detaches all segments at once. Drawers call this at the top
// of Draw before rebuilding.
func (o *Object) RemoveSegments() {
	for _, seg := range o.segments {
		seg.owner = nil
		seg.detachContents()
	}
	o.segments = o.segments[:0]
	o.invalidateScene()
}

// Segments returns the segment list in paint order. The returned slice MUST
// NOT be mutated by the caller.
func (o *Object) Segments() []*Segment {
	return o.segments
}

// NumSegments returns the number of segments.
func (o *Object) NumSegments() int {
	return len(o.segments)
}

// removeSegmentByPtr removes seg from o.segments without clearing seg.owner.
func (o *Object) removeSegmentByPtr(seg *Segment) {
	for i, s := range o.segments {
		if s == seg {
			copy(o.segments[i:], o.segments[i+1:])
			o.segments[len(o.segments)-1] = nil
			o.segments = o.segments[:len(o.segments)-1]
			return
		}
	}
}

// --- Style & visibility ---

// Style returns the object's own Style for mutation. Attributes left unset
// inherit from the parent chain and finally the theme.
func (o *Object) Style() *Style {
	return o.style
}

// SetStyle replaces the object's own Style wholesale. Panics if s is nil;
// use a fresh NewStyle to reset everything to inherited.
func (o *Object) SetStyle(s *Style) {
	if s == nil {
		panic("easel: cannot set nil style")
	}
	o.style = s
	o.invalidateScene()
}

// EffectiveStyle resolves the full attribute set as seen by this object's
// own segments: its Style, then its ancestors', then the theme.
func (o *Object) EffectiveStyle() StyleValues {
	var buf [12]*Style
	return resolveChain(o.appendStyleChain(buf[:0]))
}

// appendStyleChain appends o's style and its ancestors' styles to buf,
// nearest first.
func (o *Object) appendStyleChain(buf []*Style) []*Style {
	for p := o; p != nil; p = p.Parent {
		buf = append(buf, p.style)
	}
	return buf
}

// Visibility returns the object's visibility mask.
func (o *Object) Visibility() Visibility {
	return o.visibility
}

// SetVisibility sets which halves of the subtree's content are shown. Data
// geometry and annotation labels toggle independently; a hidden half is
// skipped by painting, hit-testing and annotation layout, but its retained
// state is kept and shown again when re-enabled.
func (o *Object) SetVisibility(v Visibility) {
	if o.visibility == v {
		return
	}
	o.visibility = v
	o.invalidateScene()
}

// Scene returns the Scene this object is attached to, or nil while detached.
func (o *Object) Scene() *Scene {
	return o.scene
}

// --- Draw contract ---

// Redraw marks this object and its descendants dirty so their Drawers run on
// the next frame, and requests a repaint. Call it after mutating the model
// state a Drawer reads.
func (o *Object) Redraw() {
	markSubtreeGeometryDirty(o)
	o.invalidateScene()
}

// Refresh requests a repaint without recomputing any geometry. Call it after
// a change that only affects how existing geometry is painted, such as a
// style color tweak.
func (o *Object) Refresh() {
	if o.scene != nil {
		o.scene.requestRepaint()
	}
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of obj (or obj itself).
func isAncestor(candidate, obj *Object) bool {
	for p := obj; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from o.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (o *Object) removeChildByPtr(child *Object) {
	for i, c := range o.children {
		if c == child {
			copy(o.children[i:], o.children[i+1:])
			o.children[len(o.children)-1] = nil
			o.children = o.children[:len(o.children)-1]
			return
		}
	}
}

// markSubtreeGeometryDirty marks obj and all its descendants for redraw.
func markSubtreeGeometryDirty(obj *Object) {
	obj.geometryDirty = true
	for _, child := range obj.children {
		markSubtreeGeometryDirty(child)
	}
}

// setSceneRecursive points the subtree at its new owning scene (or nil on
// detach), invalidating annotation layout on both the old and new scene.
func (o *Object) setSceneRecursive(s *Scene) {
	if o.scene == s {
		return
	}
	if o.scene != nil {
		o.scene.noteStructureChanged()
	}
	o.scene = s
	for _, child := range o.children {
		child.setSceneRecursive(s)
	}
	if s != nil {
		s.noteStructureChanged()
	}
}

// invalidateScene flags the owning scene, if any, that retained structure
// changed: annotation layout must rerun and a repaint is due.
func (o *Object) invalidateScene() {
	if o.scene != nil {
		o.scene.noteStructureChanged()
	}
}
