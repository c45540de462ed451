package maintenance

import "BloggerPlatform/pkg/response"

var ErrClearData = response.NewError(500, "failed to clear data")
