package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드/대시보드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 인증 (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // 로그인 필요
	AuthNoToken            = "AUTH_NO_TOKEN"            // 토큰 없음
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // 잘못된/만료된 토큰
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // 잘못된 이름/비밀번호

	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // 잘못된 입력
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // 잘못된 ID
	ValidationRequired     = "VALIDATION_REQUIRED"      // 필수 항목

	// ==================== 리소스 (RESOURCE_) ====================
	ResourceNotFound = "RESOURCE_NOT_FOUND" // 리소스 없음

	// ==================== 가게/단과대/제휴 ====================
	StoreNotFound       = "STORE_NOT_FOUND"        // 가게 없음
	PartnerNotFound     = "PARTNER_NOT_FOUND"      // 단과대 없음
	PartnershipNotFound = "PARTNERSHIP_NOT_FOUND"  // 제휴 없음
	CollegeAuthNotFound = "COLLEGE_AUTH_NOT_FOUND" // 인증 요청 없음

	// ==================== 업로드 (UPLOAD_) ====================
	UploadFileRequired = "UPLOAD_FILE_REQUIRED" // 파일 필요
	UploadFailed       = "UPLOAD_FAILED"        // 업로드 실패

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR" // 서버 오류
)
