package rectify

import "errors"

// ErrSingularTransform is returned when the image-to-object homography
// has no inverse, so object space cannot be sampled back into the raw
// frame.
var ErrSingularTransform = errors.New("rectify: image-to-object transform is not invertible")
