package validation

// Predefined schemas for the community-site payloads the gateway protects.
// Handlers share these so the acceptance rules for a record type live in
// exactly one place.

// UserProfileSchema validates profile create/update payloads.
func UserProfileSchema() Schema {
	return Schema{
		"username": {Required: true, Pattern: "username", MinLength: 3, MaxLength: 20},
		"email":    {Required: true, Type: TypeEmail, MaxLength: 255},
		"bio":      {MaxLength: 1000},
		"avatar_url": {
			Type:      TypeURL,
			MaxLength: 500,
		},
	}
}

// ForumPostSchema validates new forum post payloads.
func ForumPostSchema() Schema {
	return Schema{
		"title":       {Required: true, MinLength: 1, MaxLength: 200},
		"content":     {Required: true, MinLength: 1, MaxLength: 10000},
		"tags":        {MaxLength: 500},
		"category_id": {Required: true, Type: TypeUUID},
	}
}

// CommentSchema validates forum comment payloads.
func CommentSchema() Schema {
	return Schema{
		"content":   {Required: true, MinLength: 1, MaxLength: 2000},
		"parent_id": {Type: TypeUUID},
	}
}

// FileUploadSchema validates file upload metadata.
func FileUploadSchema() Schema {
	return Schema{
		"filename":  {Required: true, MaxLength: 255},
		"file_type": {Required: true, MaxLength: 100},
		"file_size": {Required: true, Custom: RulePositiveNumber},
	}
}
