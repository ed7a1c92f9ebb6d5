package detectv4l

import "context"

// ListCameras enumerates with a default Detector.
func ListCameras(ctx context.Context) (CameraMap, error) {
	return New().ListCameras(ctx)
}

// FindCameraByVendorModel looks up one camera with a default Detector.
func FindCameraByVendorModel(ctx context.Context, vendorID, modelID string) (int, error) {
	return New().FindCameraByVendorModel(ctx, vendorID, modelID)
}

// FindCamerasByVendorModelList resolves several pairs with a default
// Detector, spawning the listing tool once.
func FindCamerasByVendorModelList(ctx context.Context, pairs []VendorModel) ([]int, error) {
	return New().FindCamerasByVendorModelList(ctx, pairs)
}
