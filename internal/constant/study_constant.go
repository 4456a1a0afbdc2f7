package constant

const (
	// Chat answers with this instead of calling the model when a subject has no documents.
	EmptyCorpusChatMessage = "I don't have any documents uploaded for **%s** yet. Please upload some PDF or text files using the paperclip icon so I can help you study!"

	EmptyCorpusStudyMessage = "No documents found for this subject. Please upload materials first."

	UploadSuccessMessage = "Successfully indexed %s for %s"

	// Topic on the in-process watermill bus.
	StudyEventsTopic = "studyassist.events"
)
