package filebeat

// Index-template documents for filebeat-* indices. Opaque blobs written
// verbatim; do not reformat.

const indexTemplate = `{
  "mappings": {
    "_default_": {
      "_all": {
        "norms": false
      },
      "_meta": {
        "version": "6.0.0-alpha1"
      },
      "dynamic_templates": [
        {
          "fields": {
            "mapping": {
              "ignore_above": 1024,
              "type": "keyword"
            },
            "match_mapping_type": "string",
            "path_match": "fields.*"
          }
        }
      ],
      "properties": {
        "@timestamp": {
          "type": "date"
        },
        "beat": {
          "properties": {
            "hostname": {
              "ignore_above": 1024,
              "type": "keyword"
            },
            "name": {
              "ignore_above": 1024,
              "type": "keyword"
            }
          }
        },
        "input_type": {
          "ignore_above": 1024,
          "type": "keyword"
        },
        "message": {
          "norms": false,
          "type": "text"
        },
        "offset": {
          "type": "long"
        },
        "source": {
          "ignore_above": 1024,
          "type": "keyword"
        },
        "tags": {
          "ignore_above": 1024,
          "type": "keyword"
        },
        "type": {
          "ignore_above": 1024,
          "type": "keyword"
        }
      }
    }
  },
  "order": 0,
  "settings": {
    "index.refresh_interval": "5s"
  },
  "template": "filebeat-*"
}
`

const indexTemplateES2x = `{
  "mappings": {
    "_default_": {
      "_all": {
        "norms": {
          "enabled": false
        }
      },
      "_meta": {
        "version": "6.0.0-alpha1"
      },
      "dynamic_templates": [
        {
          "fields": {
            "mapping": {
              "ignore_above": 1024,
              "index": "not_analyzed",
              "type": "string"
            },
            "match_mapping_type": "string",
            "path_match": "fields.*"
          }
        }
      ],
      "properties": {
        "@timestamp": {
          "type": "date"
        },
        "beat": {
          "properties": {
            "hostname": {
              "ignore_above": 1024,
              "index": "not_analyzed",
              "type": "string"
            },
            "name": {
              "ignore_above": 1024,
              "index": "not_analyzed",
              "type": "string"
            }
          }
        },
        "input_type": {
          "ignore_above": 1024,
          "index": "not_analyzed",
          "type": "string"
        },
        "message": {
          "index": "analyzed",
          "norms": {
            "enabled": false
          },
          "type": "string"
        },
        "offset": {
          "type": "long"
        },
        "source": {
          "ignore_above": 1024,
          "index": "not_analyzed",
          "type": "string"
        },
        "tags": {
          "ignore_above": 1024,
          "index": "not_analyzed",
          "type": "string"
        },
        "type": {
          "ignore_above": 1024,
          "index": "not_analyzed",
          "type": "string"
        }
      }
    }
  },
  "order": 0,
  "settings": {
    "index.refresh_interval": "5s"
  },
  "template": "filebeat-*"
}
`
