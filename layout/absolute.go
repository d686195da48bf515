package layout

// layoutAbsoluteChildren sizes and positions every PositionAbsolute child
// against the container's content box, per spec.md §4.10. Absolute items
// never affect line building or in-flow sizing; they are walked once more
// after the flow children are fully placed.
func layoutAbsoluteChildren(cs *calcState) error {
	for _, it := range cs.items {
		if it.style.Display == DisplayNone || it.style.PositionType != PositionAbsolute {
			continue
		}
		if err := layoutAbsoluteItem(cs, it); err != nil {
			return err
		}
	}
	return nil
}

func layoutAbsoluteItem(cs *calcState, it *itemState) error {
	style := it.style

	containerW, containerH := cs.mainValue, cs.crossValue
	if !cs.isRow {
		containerW, containerH = cs.crossValue, cs.mainValue
	}

	var boxLeft, boxTop, boxRight, boxBottom float32
	if cs.isRow {
		boxLeft, boxRight = cs.paddingBorderMainLeading, cs.paddingBorderMainTrailing
		boxTop, boxBottom = cs.paddingBorderCrossLeading, cs.paddingBorderCrossTrailing
	} else {
		boxLeft, boxRight = cs.paddingBorderCrossLeading, cs.paddingBorderCrossTrailing
		boxTop, boxBottom = cs.paddingBorderMainLeading, cs.paddingBorderMainTrailing
	}
	innerW := maxf(containerW-boxLeft-boxRight, 0)
	innerH := maxf(containerH-boxTop-boxBottom, 0)

	left := computedEdgeValue(style.Position, EdgeLeft, UndefinedDim()).Resolve(innerW)
	right := computedEdgeValue(style.Position, EdgeRight, UndefinedDim()).Resolve(innerW)
	top := computedEdgeValue(style.Position, EdgeTop, UndefinedDim()).Resolve(innerH)
	bottom := computedEdgeValue(style.Position, EdgeBottom, UndefinedDim()).Resolve(innerH)

	width := style.Width.Resolve(innerW)
	height := style.Height.Resolve(innerH)

	if !IsDefined(width) {
		switch {
		case IsDefined(left) && IsDefined(right):
			width = maxf(innerW-left-right, 0)
		case hasDefiniteAspectRatio(style) && IsDefined(height):
			width = height * style.AspectRatio
		}
	}
	if !IsDefined(height) {
		switch {
		case IsDefined(top) && IsDefined(bottom):
			height = maxf(innerH-top-bottom, 0)
		case hasDefiniteAspectRatio(style) && IsDefined(width):
			height = width / style.AspectRatio
		}
	}

	if !IsDefined(width) || !IsDefined(height) {
		minW, maxW := float32(0), innerW
		minH, maxH := float32(0), innerH
		if IsDefined(width) {
			minW, maxW = width, width
		}
		if IsDefined(height) {
			minH, maxH = height, height
		}
		out, err := measureChild(it, minW, maxW, minH, maxH, cs.ownerWidth, undefined, cs.obs)
		if err != nil {
			return err
		}
		if !IsDefined(width) {
			width = out.Width
		}
		if !IsDefined(height) {
			height = out.Height
		}
	}

	width = orZero(clampf(width, style.MinWidth.Resolve(innerW), style.MaxWidth.Resolve(innerW)))
	height = orZero(clampf(height, style.MinHeight.Resolve(innerH), style.MaxHeight.Resolve(innerH)))

	var x, y float32
	switch {
	case IsDefined(left):
		x = boxLeft + left
	case IsDefined(right):
		x = boxLeft + innerW - right - width
	default:
		x = boxLeft
	}
	switch {
	case IsDefined(top):
		y = boxTop + top
	case IsDefined(bottom):
		y = boxTop + innerH - bottom - height
	default:
		y = boxTop
	}

	it.mainMarginLeading, it.mainMarginTrailing = 0, 0
	it.crossMarginLeading, it.crossMarginTrailing = 0, 0

	if cs.isRow {
		it.mainPos, it.crossPos = x, y
		it.mainSize, it.crossSize = width, height
	} else {
		it.crossPos, it.mainPos = x, y
		it.crossSize, it.mainSize = width, height
	}
	return nil
}
