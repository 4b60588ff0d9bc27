package maps

// MarkerImage is an image used as a marker icon or shadow, equivalent to
// google.maps.MarkerImage.
type MarkerImage struct {
	URL        string
	Size       *Size
	Origin     *Point
	Anchor     *Point
	ScaledSize *Size
}

// MarkerImageOption sets one of the optional MarkerImage arguments.
type MarkerImageOption func(*MarkerImage)

func WithImageSize(size *Size) MarkerImageOption {
	return func(m *MarkerImage) { m.Size = size }
}

func WithImageOrigin(origin *Point) MarkerImageOption {
	return func(m *MarkerImage) { m.Origin = origin }
}

func WithImageAnchor(anchor *Point) MarkerImageOption {
	return func(m *MarkerImage) { m.Anchor = anchor }
}

func WithImageScaledSize(size *Size) MarkerImageOption {
	return func(m *MarkerImage) { m.ScaledSize = size }
}

func NewMarkerImage(url string, opts ...MarkerImageOption) *MarkerImage {
	img := &MarkerImage{URL: url}
	for _, opt := range opts {
		if opt != nil {
			opt(img)
		}
	}
	return img
}

func (m MarkerImage) ClassName() string { return "MarkerImage" }

func (m MarkerImage) String() string { return m.URL }

func (m MarkerImage) MarshalJSON() ([]byte, error) {
	values := make([]any, 5)
	values[0] = m.URL
	if m.Size != nil {
		values[1] = m.Size
	}
	if m.Origin != nil {
		values[2] = m.Origin
	}
	if m.Anchor != nil {
		values[3] = m.Anchor
	}
	if m.ScaledSize != nil {
		values[4] = m.ScaledSize
	}
	return marshalObject(m.ClassName(), values...)
}

func (m *MarkerImage) UnmarshalJSON(data []byte) error {
	env, err := decodeEnvelope(data, "MarkerImage")
	if err != nil {
		return err
	}
	var out MarkerImage
	if _, err := argAt(env.Arg, 0, &out.URL); err != nil {
		return err
	}
	var size, scaled Size
	var origin, anchor Point
	if ok, err := argAt(env.Arg, 1, &size); err != nil {
		return err
	} else if ok {
		out.Size = &size
	}
	if ok, err := argAt(env.Arg, 2, &origin); err != nil {
		return err
	} else if ok {
		out.Origin = &origin
	}
	if ok, err := argAt(env.Arg, 3, &anchor); err != nil {
		return err
	} else if ok {
		out.Anchor = &anchor
	}
	if ok, err := argAt(env.Arg, 4, &scaled); err != nil {
		return err
	} else if ok {
		out.ScaledSize = &scaled
	}
	*m = out
	return nil
}
