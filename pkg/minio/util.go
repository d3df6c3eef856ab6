package minio

import "strings"

func validateConfig(cfg *Config) error {
	if cfg.Endpoint == "" {
		return newInvalidInputError("endpoint is required")
	}
	if cfg.AccessKey == "" {
		return newInvalidInputError("access key is required")
	}
	if cfg.SecretKey == "" {
		return newInvalidInputError("secret key is required")
	}
	if cfg.Bucket == "" {
		return newInvalidInputError("bucket is required")
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint = cfg.Endpoint + DefaultEndpointPort
	}
	return nil
}

func validateUploadRequest(req *UploadRequest) error {
	if err := validateBucketName(req.BucketName); err != nil {
		return err
	}
	if err := validateObjectName(req.ObjectName); err != nil {
		return err
	}
	if req.Reader == nil {
		return newInvalidInputError("reader is required")
	}
	if req.Size < 0 {
		return newInvalidInputError("size must not be negative")
	}
	if req.ContentType == "" {
		return newInvalidInputError("content type is required")
	}
	return nil
}

func validatePresignedURLRequest(req *PresignedURLRequest) error {
	if err := validateBucketName(req.BucketName); err != nil {
		return err
	}
	if err := validateObjectName(req.ObjectName); err != nil {
		return err
	}
	if req.Method != MethodGET && req.Method != MethodPUT {
		return newInvalidInputError("method must be 'GET' or 'PUT'")
	}
	if req.Expiry <= 0 {
		return newInvalidInputError("expiry must be positive")
	}
	if req.Expiry > MaxPresignedExpiry {
		return newInvalidInputError("expiry cannot exceed 7 days")
	}
	return nil
}

func validateBucketName(bucketName string) error {
	if len(bucketName) < 3 || len(bucketName) > 63 {
		return newInvalidInputError("bucket name must be between 3 and 63 characters")
	}
	for _, char := range bucketName {
		if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') || char == '-' || char == '.') {
			return newInvalidInputError("bucket name can only contain lowercase letters, numbers, dots and hyphens")
		}
	}
	if strings.HasPrefix(bucketName, "-") || strings.HasSuffix(bucketName, "-") {
		return newInvalidInputError("bucket name cannot start or end with hyphen")
	}
	return nil
}

func validateObjectName(objectName string) error {
	if objectName == "" {
		return newInvalidInputError("object name is required")
	}
	if strings.HasPrefix(objectName, "/") || strings.HasSuffix(objectName, "/") {
		return newInvalidInputError("object name cannot start or end with '/'")
	}
	if strings.Contains(objectName, "\\") {
		return newInvalidInputError("object name cannot contain backslashes")
	}
	return nil
}
